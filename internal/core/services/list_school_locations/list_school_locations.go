package listschoollocations

import (
	"context"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/school"
	"schoolops/internal/core/services"
)

type Input struct {
	SchoolName string
}

type Result struct {
	Locations []string
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
	locations, err := s.schoolRepository.ListLocations(ctx, input.SchoolName)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not list school locations.",
			logging.Entry("schoolName", input.SchoolName),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{Locations: locations}, nil
}
