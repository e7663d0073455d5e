package submit

import (
	"encoding/json"
	"io"
	"net/http"

	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/services"
	createsubmission "schoolops/internal/core/services/create_submission"
	"schoolops/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[createsubmission.Input, createsubmission.Result]
}

func New(
	service services.Service[createsubmission.Input, createsubmission.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	School      string `json:"school"`
	Location    string `json:"location"`
	Grade       string `json:"grade"`
	Term        string `json:"term"`
	Workbook    string `json:"workbook"`
	Count       int    `json:"count"`
	Remark      string `json:"remark"`
	SubmittedBy string `json:"submitted_by"`
}

type Result struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.School, validation.Required, validation.Length(0, 512)),
		validation.Field(&i.Location, validation.Length(0, 512)),
		validation.Field(&i.Grade, validation.Length(0, 64)),
		validation.Field(&i.Term, validation.Length(0, 64)),
		validation.Field(&i.Workbook, validation.Length(0, 512)),
		validation.Field(&i.Count, validation.Min(0)),
		validation.Field(&i.Remark, validation.Length(0, 2048)),
		validation.Field(&i.SubmittedBy, validation.Length(0, 512)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderFailure(rw, "Invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderFailure(rw, "School required", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		createsubmission.Input{
			SchoolName:  input.School,
			Location:    input.Location,
			Grade:       input.Grade,
			Term:        input.Term,
			Workbook:    input.Workbook,
			Count:       input.Count,
			Remark:      input.Remark,
			SubmittedBy: input.SubmittedBy,
		},
	)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(
		rw,
		Result{
			Success: true,
			ID:      int64(result.Submission.ID),
			Message: "Form submitted successfully",
		},
		http.StatusOK,
	)
}
