package deleteworkbook

import (
	"context"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/workbook"
	"schoolops/internal/core/services"
)

type Input struct {
	ID workbook.ID
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
	if err := s.workbookRepository.Delete(ctx, input.ID); err != nil {
		s.log.Error(
			ctx,
			"Could not delete workbook.",
			logging.Entry("workbookID", input.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(ctx, "Workbook has been deleted.", logging.Entry("workbookID", input.ID))
	return result, nil
}
