package deletesubmission

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/submission"
	"schoolops/internal/core/services"
	deletesubmission "schoolops/internal/core/services/delete_submission"
	"schoolops/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[deletesubmission.Input, deletesubmission.Result]
}

func New(
	service services.Service[deletesubmission.Input, deletesubmission.Result],
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
		response.RenderFailure(rw, "Invalid submission ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), deletesubmission.Input{ID: submission.ID(id)})
	if errors.Is(err, submission.ErrSubmissionDoesNotExist) {
		response.RenderFailure(rw, "Submission not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.RenderSuccess(rw, fmt.Sprintf("Submission %d deleted", id), http.StatusOK)
}
