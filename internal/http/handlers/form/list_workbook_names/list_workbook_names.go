package listworkbooknames

import (
	"net/http"

	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/services"
	listworkbooknames "schoolops/internal/core/services/list_workbook_names"
	"schoolops/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[listworkbooknames.Input, listworkbooknames.Result]
}

func New(
	service services.Service[listworkbooknames.Input, listworkbooknames.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	grade := r.URL.Query().Get("grade")
	if grade == "" {
		response.RenderFailure(rw, "Grade required", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), listworkbooknames.Input{Grade: grade})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, result.Names, http.StatusOK)
}
