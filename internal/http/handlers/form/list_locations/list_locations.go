package listlocations

import (
	"net/http"

	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/services"
	listschoollocations "schoolops/internal/core/services/list_school_locations"
	"schoolops/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[listschoollocations.Input, listschoollocations.Result]
}

func New(
	service services.Service[listschoollocations.Input, listschoollocations.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	schoolName := r.URL.Query().Get("school")
	if schoolName == "" {
		response.RenderFailure(rw, "School required", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		listschoollocations.Input{SchoolName: schoolName},
	)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, result.Locations, http.StatusOK)
}
