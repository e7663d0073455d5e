package createschool

import (
	"encoding/json"
	"io"
	"net/http"

	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/services"
	createschool "schoolops/internal/core/services/create_school"
	"schoolops/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[createschool.Input, createschool.Result]
}

func New(
	service services.Service[createschool.Input, createschool.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	SchoolName      string `json:"school_name"`
	Location        string `json:"location"`
	ReportingBranch string `json:"reporting_branch"`
	NumStudents     string `json:"num_students"`
}

type Result struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.SchoolName, validation.Required, validation.Length(0, 512)),
		validation.Field(&i.Location, validation.Length(0, 512)),
		validation.Field(&i.ReportingBranch, validation.Length(0, 512)),
		validation.Field(&i.NumStudents, validation.Length(0, 64)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderFailure(rw, "Invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderFailure(rw, "School name required", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		createschool.Input{
			SchoolName:      input.SchoolName,
			Location:        input.Location,
			ReportingBranch: input.ReportingBranch,
			NumStudents:     input.NumStudents,
		},
	)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Success: true, ID: int64(result.School.ID)}, http.StatusOK)
}
