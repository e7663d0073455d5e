package createworkbook

import (
	"context"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/workbook"
	"schoolops/internal/core/services"
)

type Input struct {
	Grade    string
	Name     string
	Quantity int
}

type Result struct {
	Workbook workbook.Workbook
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
	created, err := s.workbookRepository.Create(ctx, workbook.CreateWorkbookInput{
		Grade:    input.Grade,
		Name:     input.Name,
		Quantity: input.Quantity,
	})
	if err != nil {
		s.log.Error(ctx, "Could not create workbook.", logging.Entry("err", err))
		return result, err
	}
	s.log.Info(ctx, "New workbook has been created.", logging.Entry("workbookID", created.ID))
	return Result{Workbook: created}, nil
}
