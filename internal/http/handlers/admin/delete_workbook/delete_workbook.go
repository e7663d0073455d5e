package deleteworkbook

import (
	"errors"
	"net/http"
	"strconv"

	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/workbook"
	"schoolops/internal/core/services"
	deleteworkbook "schoolops/internal/core/services/delete_workbook"
	"schoolops/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[deleteworkbook.Input, deleteworkbook.Result]
}

func New(
	service services.Service[deleteworkbook.Input, deleteworkbook.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		response.RenderFailure(rw, "Invalid workbook ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), deleteworkbook.Input{ID: workbook.ID(id)})
	if errors.Is(err, workbook.ErrWorkbookDoesNotExist) {
		response.RenderFailure(rw, "Workbook not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Success: true, ID: id, Message: "Workbook deleted"}, http.StatusOK)
}
