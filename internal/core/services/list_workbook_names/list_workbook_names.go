package listworkbooknames

import (
	"context"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/workbook"
	"schoolops/internal/core/services"
)

type Input struct {
	Grade string
}

type Result struct {
	Names []string
}

type service struct {
	log                logging.Logger
	workbookRepository workbook.Repository
}

func New(log logging.Logger, workbookRepository workbook.Repository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if workbookRepository == nil {
		panic(e.NewNilArgumentError("workbookRepository"))
	}
	return &service{log: log, workbookRepository: workbookRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	names, err := s.workbookRepository.ListNamesByGrade(ctx, input.Grade)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not list workbook names.",
			logging.Entry("grade", input.Grade),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{Names: names}, nil
}
