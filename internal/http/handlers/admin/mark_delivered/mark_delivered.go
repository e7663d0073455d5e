package markdelivered

import (
	"encoding/json"
	"io"
	"net/http"

	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/submission"
	"schoolops/internal/core/services"
	marksubmissionsdelivered "schoolops/internal/core/services/mark_submissions_delivered"
	"schoolops/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[marksubmissionsdelivered.Input, marksubmissionsdelivered.Result]
}

func New(
	service services.Service[marksubmissionsdelivered.Input, marksubmissionsdelivered.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	IDs       []int64 `json:"ids"`
	Delivered string  `json:"delivered"`
}

type Result struct {
	Success bool  `json:"success"`
	Updated int64 `json:"updated"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.IDs, validation.Required),
		validation.Field(
			&i.Delivered,
			validation.In(submission.DeliveredYes, submission.DeliveredNo),
		),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderFailure(rw, "No IDs provided", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderFailure(rw, "No IDs provided", http.StatusBadRequest)
		return
	}

	ids := make([]submission.ID, 0, len(input.IDs))
	for _, id := range input.IDs {
		ids = append(ids, submission.ID(id))
	}
	delivered := input.Delivered
	if delivered == "" {
		delivered = submission.DeliveredYes
	}

	result, err := h.service.Run(
		r.Context(),
		marksubmissionsdelivered.Input{IDs: ids, Delivered: delivered},
	)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Success: true, Updated: result.Updated}, http.StatusOK)
}
