package createschool

import (
	"context"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/school"
	"schoolops/internal/core/services"
)

type Input struct {
	SchoolName      string
	Location        string
	ReportingBranch string
	NumStudents     string
}

type Result struct {
	School school.School
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
	created, err := s.schoolRepository.Create(ctx, school.CreateSchoolInput{
		SchoolName:      input.SchoolName,
		Location:        input.Location,
		ReportingBranch: input.ReportingBranch,
		NumStudents:     input.NumStudents,
	})
	if err != nil {
		s.log.Error(ctx, "Could not create school.", logging.Entry("err", err))
		return result, err
	}
	s.log.Info(ctx, "New school has been created.", logging.Entry("schoolID", created.ID))
	return Result{School: created}, nil
}
