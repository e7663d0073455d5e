package sendpasswordresettoken

import (
	"context"
	"errors"
	c "schoolops/internal/core/domain/common"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/user"
	"schoolops/internal/core/services"
	"time"
)

type Input struct {
	Email c.Email
}

// Result is intentionally empty: callers must not be able to tell whether a
// token was issued.
type Result struct{}

type service struct {
	log                  logging.Logger
	userRepository       user.UserRepository
	resetTokenRepository user.ResetTokenRepository
	resetTokenGenerator  user.ResetTokenGenerator
	resetTokenSender     user.ResetTokenSender
	tokenValidDuration   time.Duration
	now                  func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	resetTokenRepository user.ResetTokenRepository,
	resetTokenGenerator user.ResetTokenGenerator,
	resetTokenSender user.ResetTokenSender,
	tokenValidDuration time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if resetTokenRepository == nil {
		panic(e.NewNilArgumentError("resetTokenRepository"))
	}
	if resetTokenGenerator == nil {
		panic(e.NewNilArgumentError("resetTokenGenerator"))
	}
	if resetTokenSender == nil {
		panic(e.NewNilArgumentError("resetTokenSender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                  log,
		userRepository:       userRepository,
		resetTokenRepository: resetTokenRepository,
		resetTokenGenerator:  resetTokenGenerator,
		resetTokenSender:     resetTokenSender,
		tokenValidDuration:   tokenValidDuration,
		now:                  now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	_, err = s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		// Indistinguishable from the issued case for the caller.
		s.log.Info(ctx, "Password reset requested for unknown email.")
		return result, nil
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset.",
			logging.Entry("err", err),
		)
		return result, err
	}

	token := s.resetTokenGenerator.GenerateResetToken()
	record, err := s.resetTokenRepository.Create(ctx, user.CreateResetTokenInput{
		Email:     input.Email,
		Token:     token,
		ExpiresAt: s.now().Add(s.tokenValidDuration),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create password reset token.",
			logging.Entry("err", err),
		)
		return result, err
	}

	if err := s.resetTokenSender.SendResetToken(ctx, input.Email, token); err != nil {
		// The token row stays and expires naturally; no retry.
		s.log.Error(
			ctx,
			"Could not send password reset token.",
			logging.Entry("tokenID", record.ID),
			logging.Entry("err", err),
		)
		return result, user.ErrResetTokenSendFailed
	}

	s.log.Info(
		ctx,
		"Password reset token has been sent.",
		logging.Entry("tokenID", record.ID),
		logging.Entry("expiresAt", record.ExpiresAt),
	)
	return result, nil
}
