package deletesubmission

import (
	"context"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/submission"
	"schoolops/internal/core/services"
)

type Input struct {
	ID submission.ID
}

type Result struct{}

type service struct {
	log                  logging.Logger
	submissionRepository submission.Repository
}

func New(log logging.Logger, submissionRepository submission.Repository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if submissionRepository == nil {
		panic(e.NewNilArgumentError("submissionRepository"))
	}
	return &service{log: log, submissionRepository: submissionRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := s.submissionRepository.Delete(ctx, input.ID); err != nil {
		s.log.Error(
			ctx,
			"Could not delete submission.",
			logging.Entry("submissionID", input.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(ctx, "Submission has been deleted.", logging.Entry("submissionID", input.ID))
	return result, nil
}
