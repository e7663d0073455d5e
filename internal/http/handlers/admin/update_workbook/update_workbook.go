package updateworkbook

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/workbook"
	"schoolops/internal/core/services"
	updateworkbookquantity "schoolops/internal/core/services/update_workbook_quantity"
	"schoolops/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[updateworkbookquantity.Input, updateworkbookquantity.Result]
}

func New(
	service services.Service[updateworkbookquantity.Input, updateworkbookquantity.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Quantity int `json:"quantity"`
}

type Result struct {
	Success  bool  `json:"success"`
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Quantity, validation.Min(0)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		response.RenderFailure(rw, "Invalid workbook ID", http.StatusBadRequest)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderFailure(rw, "Invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderFailure(rw, "Invalid quantity", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(
		r.Context(),
		updateworkbookquantity.Input{ID: workbook.ID(id), Quantity: input.Quantity},
	)
	if errors.Is(err, workbook.ErrWorkbookDoesNotExist) {
		response.RenderFailure(rw, "Workbook not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Success: true, ID: id, Quantity: input.Quantity}, http.StatusOK)
}
