package userinfo

import (
	"errors"
	"net/http"

	c "schoolops/internal/core/domain/common"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/user"
	"schoolops/internal/core/services"
	getuserinfo "schoolops/internal/core/services/get_user_info"
	"schoolops/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[getuserinfo.Input, getuserinfo.Result]
}

type Result struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

func New(
	service services.Service[getuserinfo.Input, getuserinfo.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	email := c.NewEmail(r.URL.Query().Get("email"))
	if email == "" {
		response.RenderFailure(rw, "Email required", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), getuserinfo.Input{Email: email})
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderFailure(rw, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(
		rw,
		Result{Success: true, Name: result.Name.Value, Email: string(result.Email)},
		http.StatusOK,
	)
}
