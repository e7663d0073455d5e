package createworkbook

import (
	"encoding/json"
	"io"
	"net/http"

	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/services"
	createworkbook "schoolops/internal/core/services/create_workbook"
	"schoolops/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[createworkbook.Input, createworkbook.Result]
}

func New(
	service services.Service[createworkbook.Input, createworkbook.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Grade        string `json:"grade"`
	WorkbookName string `json:"workbook_name"`
	Quantity     int    `json:"quantity"`
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
		validation.Field(&i.Grade, validation.Required, validation.Length(0, 64)),
		validation.Field(&i.WorkbookName, validation.Required, validation.Length(0, 512)),
		validation.Field(&i.Quantity, validation.Min(0)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderFailure(rw, "Invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderFailure(rw, "Grade and workbook name required", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		createworkbook.Input{
			Grade:    input.Grade,
			Name:     input.WorkbookName,
			Quantity: input.Quantity,
		},
	)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Success: true, ID: int64(result.Workbook.ID)}, http.StatusOK)
}
