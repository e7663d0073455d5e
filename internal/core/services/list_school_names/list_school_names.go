package listschoolnames

import (
	"context"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/school"
	"schoolops/internal/core/services"
)

type Input struct{}

type Result struct {
	Names []string
}

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
	names, err := s.schoolRepository.ListNames(ctx)
	if err != nil {
		s.log.Error(ctx, "Could not list school names.", logging.Entry("err", err))
		return result, err
	}
	return Result{Names: names}, nil
}
