package createuser

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
	Name     c.Optional[string]
	Email    c.Email
	Password user.RawPassword
	Role     user.Role
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	passwordHasher user.PasswordHasher
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	return &service{log: log, userRepository: userRepository, passwordHasher: passwordHasher}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	createdUser, err := s.userRepository.Create(ctx, user.CreateUserInput{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         input.Role,
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		s.log.Info(ctx, "User with the email already exists.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create new user.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "New user has been created.", logging.Entry("userID", createdUser.ID))
	return Result{User: createdUser}, nil
}
