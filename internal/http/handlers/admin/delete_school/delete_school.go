package deleteschool

import (
	"errors"
	"net/http"
	"strconv"

	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/school"
	"schoolops/internal/core/services"
	deleteschool "schoolops/internal/core/services/delete_school"
	"schoolops/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[deleteschool.Input, deleteschool.Result]
}

func New(
	service services.Service[deleteschool.Input, deleteschool.Result],
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
		response.RenderFailure(rw, "Invalid school ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), deleteschool.Input{ID: school.ID(id)})
	if errors.Is(err, school.ErrSchoolDoesNotExist) {
		response.RenderFailure(rw, "School not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, response.Envelope{Success: true}, http.StatusOK)
}
