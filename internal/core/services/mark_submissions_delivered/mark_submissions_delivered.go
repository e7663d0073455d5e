package marksubmissionsdelivered

import (
	"context"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/submission"
	"schoolops/internal/core/services"
)

type Input struct {
	IDs       []submission.ID
	Delivered string
}

type Result struct {
	Updated int64
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
	updated, err := s.submissionRepository.MarkDelivered(ctx, input.IDs, input.Delivered)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not mark submissions delivered.",
			logging.Entry("ids", input.IDs),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(
		ctx,
		"Submissions delivery status updated.",
		logging.Entry("ids", input.IDs),
		logging.Entry("delivered", input.Delivered),
		logging.Entry("updated", updated),
	)
	return Result{Updated: updated}, nil
}
