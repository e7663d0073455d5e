package deleteuser

import (
	"context"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/user"
	"schoolops/internal/core/services"
)

type Input struct {
	ID user.ID
}

type Result struct{}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
}

func New(log logging.Logger, userRepository user.UserRepository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	return &service{log: log, userRepository: userRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := s.userRepository.Delete(ctx, input.ID); err != nil {
		s.log.Error(
			ctx,
			"Could not delete user.",
			logging.Entry("userID", input.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(ctx, "User has been deleted.", logging.Entry("userID", input.ID))
	return result, nil
}
