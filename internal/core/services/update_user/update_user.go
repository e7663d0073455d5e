package updateuser

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
	ID       user.ID
	Name     c.Optional[string]
	Email    c.Email
	Password user.RawPassword
	Role     user.Role
}

type Result struct{}

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

	err = s.userRepository.Update(ctx, user.UpdateUserInput{
		ID:           input.ID,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         input.Role,
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update user.",
			logging.Entry("userID", input.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "User has been updated.", logging.Entry("userID", input.ID))
	return result, nil
}
