package listschools

import (
	"net/http"

	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/school"
	"schoolops/internal/core/services"
	listschools "schoolops/internal/core/services/list_schools"
	"schoolops/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[listschools.Input, listschools.Result]
}

func New(
	service services.Service[listschools.Input, listschools.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type schoolView struct {
	ID              int64  `json:"id"`
	SchoolName      string `json:"school_name"`
	Location        string `json:"location"`
	ReportingBranch string `json:"reporting_branch"`
	NumStudents     string `json:"num_students"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listschools.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	views := make([]schoolView, 0, len(result.Schools))
	for _, s := range result.Schools {
		views = append(views, newSchoolView(s))
	}
	response.Render(rw, views, http.StatusOK)
}

func newSchoolView(s school.School) schoolView {
	return schoolView{
		ID:              int64(s.ID),
		SchoolName:      s.SchoolName,
		Location:        s.Location,
		ReportingBranch: s.ReportingBranch,
		NumStudents:     s.NumStudents,
	}
}
