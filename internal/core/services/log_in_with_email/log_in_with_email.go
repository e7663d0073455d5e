package loginwithemail

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
	Email    c.Email
	Password user.RawPassword
}

type Result struct {
	Role  user.Role
	Email c.Email
}

type service struct {
	log                logging.Logger
	userRepository     user.UserRepository
	passwordHasher     user.PasswordHasher
	allowedEmailSuffix string
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
	allowedEmailSuffix string,
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
	if allowedEmailSuffix == "" {
		panic(e.NewNilArgumentError("allowedEmailSuffix"))
	}
	return &service{
		log:                log,
		userRepository:     userRepository,
		passwordHasher:     passwordHasher,
		allowedEmailSuffix: allowedEmailSuffix,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	// The domain gate comes before any store access.
	if !input.Email.HasSuffix(s.allowedEmailSuffix) {
		return result, user.ErrEmailDomainNotAllowed
	}

	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		// Minimize risk for timing attacks
		s.passwordHasher.HashPassword(input.Password)
		return result, user.ErrInvalidCredentials
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for authentication.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}
	if !s.passwordHasher.ValidatePassword(input.Password, u.PasswordHash) {
		return result, user.ErrInvalidCredentials
	}

	s.log.Info(ctx, "User successfully authenticated.", logging.Entry("email", u.Email))
	return Result{Role: u.Role, Email: u.Email}, nil
}
