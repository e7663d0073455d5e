package listworkbooks

import (
	"context"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/workbook"
	"schoolops/internal/core/services"
)

type Input struct{}

type Result struct {
	Workbooks []workbook.Workbook
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
	workbooks, err := s.workbookRepository.List(ctx)
	if err != nil {
		s.log.Error(ctx, "Could not list workbooks.", logging.Entry("err", err))
		return result, err
	}
	return Result{Workbooks: workbooks}, nil
}
