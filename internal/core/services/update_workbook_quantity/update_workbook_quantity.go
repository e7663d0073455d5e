package updateworkbookquantity

import (
	"context"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/workbook"
	"schoolops/internal/core/services"
)

type Input struct {
	ID       workbook.ID
	Quantity int
}

type Result struct{}

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
	if err := s.workbookRepository.UpdateQuantity(ctx, input.ID, input.Quantity); err != nil {
		s.log.Error(
			ctx,
			"Could not update workbook quantity.",
			logging.Entry("workbookID", input.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(
		ctx,
		"Workbook quantity has been updated.",
		logging.Entry("workbookID", input.ID),
		logging.Entry("quantity", input.Quantity),
	)
	return result, nil
}
