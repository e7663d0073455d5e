package listsubmissions

import (
	"net/http"

	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/submission"
	"schoolops/internal/core/services"
	listsubmissions "schoolops/internal/core/services/list_submissions"
	"schoolops/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[listsubmissions.Input, listsubmissions.Result]
}

func New(
	service services.Service[listsubmissions.Input, listsubmissions.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type submissionView struct {
	ID          int64  `json:"id"`
	SchoolName  string `json:"school_name"`
	Location    string `json:"location"`
	Grade       string `json:"grade"`
	Term        string `json:"term"`
	Workbook    string `json:"workbook"`
	Count       int    `json:"count"`
	Remark      string `json:"remark"`
	SubmittedBy string `json:"submitted_by"`
	SubmittedAt string `json:"submitted_at"`
	Delivered   string `json:"delivered"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listsubmissions.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	views := make([]submissionView, 0, len(result.Submissions))
	for _, s := range result.Submissions {
		views = append(views, newSubmissionView(s))
	}
	response.Render(rw, views, http.StatusOK)
}

func newSubmissionView(s submission.Submission) submissionView {
	return submissionView{
		ID:          int64(s.ID),
		SchoolName:  s.SchoolName,
		Location:    s.Location,
		Grade:       s.Grade,
		Term:        s.Term,
		Workbook:    s.Workbook,
		Count:       s.Count,
		Remark:      s.Remark,
		SubmittedBy: s.SubmittedBy,
		SubmittedAt: s.SubmittedAt.Format("2006-01-02T15:04:05"),
		Delivered:   s.Delivered,
	}
}
