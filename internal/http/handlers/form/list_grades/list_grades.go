package listgrades

import (
	"net/http"

	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/services"
	listgrades "schoolops/internal/core/services/list_grades"
	"schoolops/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[listgrades.Input, listgrades.Result]
}

func New(
	service services.Service[listgrades.Input, listgrades.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listgrades.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, result.Grades, http.StatusOK)
}
