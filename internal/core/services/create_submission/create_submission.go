package createsubmission

import (
	"context"
	"errors"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/submission"
	"schoolops/internal/core/services"
	"time"

	"github.com/golang-module/carbon/v2"
)

// Entry timestamps are recorded in IST, matching how the ops team reads the
// dashboard.
const submittedAtTimezone = "Asia/Kolkata"

type Input struct {
	SchoolName  string
	Location    string
	Grade       string
	Term        string
	Workbook    string
	Count       int
	Remark      string
	SubmittedBy string
}

type Result struct {
	Submission submission.Submission
}

type service struct {
	log                  logging.Logger
	submissionRepository submission.Repository
	eventPublisher       submission.EventPublisher
	now                  func() time.Time
}

func New(
	log logging.Logger,
	submissionRepository submission.Repository,
	eventPublisher submission.EventPublisher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if submissionRepository == nil {
		panic(e.NewNilArgumentError("submissionRepository"))
	}
	if eventPublisher == nil {
		panic(e.NewNilArgumentError("eventPublisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                  log,
		submissionRepository: submissionRepository,
		eventPublisher:       eventPublisher,
		now:                  now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	submittedAt := carbon.Time2Carbon(s.now()).SetTimezone(submittedAtTimezone).Carbon2Time()

	created, err := s.submissionRepository.Create(ctx, submission.CreateSubmissionInput{
		SchoolName:  input.SchoolName,
		Location:    input.Location,
		Grade:       input.Grade,
		Term:        input.Term,
		Workbook:    input.Workbook,
		Count:       input.Count,
		Remark:      input.Remark,
		SubmittedBy: input.SubmittedBy,
		SubmittedAt: submittedAt,
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not create submission.", logging.Entry("err", err))
		return result, err
	}

	s.eventPublisher.PublishSubmitted(ctx, created)

	s.log.Info(
		ctx,
		"New submission has been created.",
		logging.Entry("submissionID", created.ID),
		logging.Entry("schoolName", created.SchoolName),
	)
	return Result{Submission: created}, nil
}
