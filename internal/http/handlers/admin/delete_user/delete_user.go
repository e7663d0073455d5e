package deleteuser

import (
	"errors"
	"net/http"
	"strconv"

	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/user"
	"schoolops/internal/core/services"
	deleteuser "schoolops/internal/core/services/delete_user"
	"schoolops/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[deleteuser.Input, deleteuser.Result]
}

func New(
	service services.Service[deleteuser.Input, deleteuser.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		response.RenderFailure(rw, "Invalid user ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), deleteuser.Input{ID: user.ID(id)})
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderFailure(rw, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.RenderSuccess(rw, "User deleted", http.StatusOK)
}
