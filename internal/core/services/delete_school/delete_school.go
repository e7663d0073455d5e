package deleteschool

import (
	"context"
	"errors"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/school"
	"schoolops/internal/core/services"
)

type Input struct {
	ID school.ID
}

type Result struct{}

type service struct {
	log              logging.Logger
	schoolRepository school.Repository
}

func New(log logging.Logger, schoolRepository school.Repository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if schoolRepository == nil {
		panic(e.NewNilArgumentError("schoolRepository"))
	}
	return &service{log: log, schoolRepository: schoolRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	rowsAffected, err := s.schoolRepository.Delete(ctx, input.ID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not delete school.",
			logging.Entry("schoolID", input.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	if rowsAffected == 0 {
		return result, school.ErrSchoolDoesNotExist
	}
	s.log.Info(ctx, "School has been deleted.", logging.Entry("schoolID", input.ID))
	return result, nil
}
