package updateschool

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/school"
	"schoolops/internal/core/services"
	updateschool "schoolops/internal/core/services/update_school"
	"schoolops/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[updateschool.Input, updateschool.Result]
}

func New(
	service services.Service[updateschool.Input, updateschool.Result],
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

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.SchoolName, validation.Required, validation.Length(0, 512)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		response.RenderFailure(rw, "Invalid school ID", http.StatusBadRequest)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderFailure(rw, "Invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderFailure(rw, "School name required", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(
		r.Context(),
		updateschool.Input{
			ID:              school.ID(id),
			SchoolName:      input.SchoolName,
			Location:        input.Location,
			ReportingBranch: input.ReportingBranch,
			NumStudents:     input.NumStudents,
		},
	)
	if errors.Is(err, school.ErrSchoolDoesNotExist) {
		response.RenderFailure(rw, "School not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.RenderSuccess(rw, fmt.Sprintf("Row %d updated", id), http.StatusOK)
}
