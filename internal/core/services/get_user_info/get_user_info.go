package getuserinfo

import (
	"context"
	"errors"
	c "schoolops/internal/core/domain/common"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/user"
	"schoolops/internal/core/services"
)

type Input struct {
	Email c.Email
}

type Result struct {
	Name  c.Optional[string]
	Email c.Email
}

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
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) || errors.Is(err, user.ErrUserDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not get user info.", logging.Entry("err", err))
		return result, err
	}
	return Result{Name: u.Name, Email: u.Email}, nil
}
