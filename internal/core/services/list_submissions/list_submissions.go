package listsubmissions

import (
	"context"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/submission"
	"schoolops/internal/core/services"
)

type Input struct{}

type Result struct {
	Submissions []submission.Submission
}

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
	submissions, err := s.submissionRepository.List(ctx)
	if err != nil {
		s.log.Error(ctx, "Could not list submissions.", logging.Entry("err", err))
		return result, err
	}
	return Result{Submissions: submissions}, nil
}
