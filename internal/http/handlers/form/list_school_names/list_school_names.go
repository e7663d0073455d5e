package listschoolnames

import (
	"net/http"

	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/services"
	listschoolnames "schoolops/internal/core/services/list_school_names"
	"schoolops/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[listschoolnames.Input, listschoolnames.Result]
}

func New(
	service services.Service[listschoolnames.Input, listschoolnames.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listschoolnames.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, result.Names, http.StatusOK)
}
