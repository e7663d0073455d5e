package listworkbooks

import (
	"net/http"

	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/workbook"
	"schoolops/internal/core/services"
	listworkbooks "schoolops/internal/core/services/list_workbooks"
	"schoolops/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[listworkbooks.Input, listworkbooks.Result]
}

func New(
	service services.Service[listworkbooks.Input, listworkbooks.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type workbookView struct {
	ID           int64  `json:"id"`
	Grade        string `json:"grade"`
	WorkbookName string `json:"workbook_name"`
	Quantity     int    `json:"quantity"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listworkbooks.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	views := make([]workbookView, 0, len(result.Workbooks))
	for _, w := range result.Workbooks {
		views = append(views, newWorkbookView(w))
	}
	response.Render(rw, views, http.StatusOK)
}

func newWorkbookView(w workbook.Workbook) workbookView {
	return workbookView{
		ID:           int64(w.ID),
		Grade:        w.Grade,
		WorkbookName: w.Name,
		Quantity:     w.Quantity,
	}
}
