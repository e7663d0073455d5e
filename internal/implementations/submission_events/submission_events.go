package submissionevents

import (
	"context"
	"encoding/json"

	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/submission"

	"github.com/r3labs/sse/v2"
)

// StreamID is the SSE stream new form submissions are published to.
const StreamID = "form-submissions"

type SSEPublisher struct {
	log       logging.Logger
	sseServer *sse.Server
}

func NewSSEPublisher(log logging.Logger, sseServer *sse.Server) *SSEPublisher {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &SSEPublisher{log: log, sseServer: sseServer}
}

type submittedEvent struct {
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

func (p *SSEPublisher) PublishSubmitted(ctx context.Context, s submission.Submission) {
	data, err := json.Marshal(submittedEvent{
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
	})
	if err != nil {
		p.log.Error(ctx, "Could not encode submission event.", logging.Entry("err", err))
		return
	}
	p.sseServer.TryPublish(StreamID, &sse.Event{Data: data})
}
