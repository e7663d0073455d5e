package resetpassword

import (
	"context"
	"errors"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/logging"
	uow "schoolops/internal/core/domain/unit_of_work"
	"schoolops/internal/core/domain/user"
	"schoolops/internal/core/services"
	"time"
)

type Input struct {
	Token       user.ResetToken
	NewPassword user.RawPassword
}

type Result struct{}

type service struct {
	log                  logging.Logger
	unitOfWork           uow.UnitOfWork
	resetTokenRepository user.ResetTokenRepository
	passwordHasher       user.PasswordHasher
	now                  func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	resetTokenRepository user.ResetTokenRepository,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if resetTokenRepository == nil {
		panic(e.NewNilArgumentError("resetTokenRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                  log,
		unitOfWork:           unitOfWork,
		resetTokenRepository: resetTokenRepository,
		passwordHasher:       passwordHasher,
		now:                  now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	record, err := s.resetTokenRepository.GetByToken(ctx, input.Token)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrResetTokenDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not get password reset token.", logging.Entry("err", err))
		return result, err
	}

	// Valid iff expiry is strictly in the future. The expired row is left in
	// place: it can never be accepted and keeps this path out of the
	// transaction.
	if !record.ExpiresAt.After(s.now()) {
		return result, user.ErrResetTokenExpired
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not begin unit of work.", logging.Entry("err", err))
		return result, err
	}
	defer uow.Rollback(ctx)

	// The password update and the token delete commit together. A zero-row
	// update means the user was deleted after issuance; the token is still
	// consumed and the call succeeds.
	rowsAffected, err := uow.Users().SetPasswordByEmail(ctx, record.Email, newPasswordHash)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update user password.",
			logging.Entry("tokenID", record.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	if _, err := uow.ResetTokens().DeleteByToken(ctx, input.Token); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not delete password reset token.",
			logging.Entry("tokenID", record.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = uow.Commit(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("tokenID", record.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New password has been successfully set.",
		logging.Entry("tokenID", record.ID),
		logging.Entry("usersUpdated", rowsAffected),
	)
	return result, nil
}
