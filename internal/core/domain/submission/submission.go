package submission

import (
	"context"
	"errors"
	"time"
)

type ID int64

const (
	DeliveredYes = "Yes"
	DeliveredNo  = "No"
)

// Submission is one workbook-request entry filed from the field-user form.
type Submission struct {
	ID          ID
	SchoolName  string
	Location    string
	Grade       string
	Term        string
	Workbook    string
	Count       int
	Remark      string
	SubmittedBy string
	SubmittedAt time.Time
	Delivered   string
}

type CreateSubmissionInput struct {
	SchoolName  string
	Location    string
	Grade       string
	Term        string
	Workbook    string
	Count       int
	Remark      string
	SubmittedBy string
	SubmittedAt time.Time
}

var ErrSubmissionDoesNotExist = errors.New("submission does not exist")

type Repository interface {
	Create(ctx context.Context, input CreateSubmissionInput) (Submission, error)
	List(ctx context.Context) ([]Submission, error)
	Delete(ctx context.Context, id ID) error
	MarkDelivered(ctx context.Context, ids []ID, delivered string) (rowsAffected int64, err error)
}

// EventPublisher pushes freshly created submissions to the admin dashboard
// live feed. Publishing is best-effort and must not fail the submit.
type EventPublisher interface {
	PublishSubmitted(ctx context.Context, s Submission)
}
