package updateschool

import (
	"context"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/school"
	"schoolops/internal/core/services"
)

type Input struct {
	ID              school.ID
	SchoolName      string
	Location        string
	ReportingBranch string
	NumStudents     string
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
	err = s.schoolRepository.Update(ctx, school.UpdateSchoolInput{
		ID:              input.ID,
		SchoolName:      input.SchoolName,
		Location:        input.Location,
		ReportingBranch: input.ReportingBranch,
		NumStudents:     input.NumStudents,
	})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update school.",
			logging.Entry("schoolID", input.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(ctx, "School has been updated.", logging.Entry("schoolID", input.ID))
	return result, nil
}
