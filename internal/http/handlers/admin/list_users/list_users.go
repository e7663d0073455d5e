package listusers

import (
	"net/http"

	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/user"
	"schoolops/internal/core/services"
	listusers "schoolops/internal/core/services/list_users"
	"schoolops/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[listusers.Input, listusers.Result]
}

func New(
	service services.Service[listusers.Input, listusers.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

// userView deliberately has no password field.
type userView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listusers.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	views := make([]userView, 0, len(result.Users))
	for _, u := range result.Users {
		views = append(views, newUserView(u))
	}
	response.Render(rw, views, http.StatusOK)
}

func newUserView(u user.User) userView {
	return userView{
		ID:    int64(u.ID),
		Name:  u.Name.Value,
		Email: string(u.Email),
		Role:  string(u.Role),
	}
}
