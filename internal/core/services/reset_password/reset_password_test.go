package resetpassword

import (
	"context"
	c "schoolops/internal/core/domain/common"
	"schoolops/internal/core/domain/logging"
	uow "schoolops/internal/core/domain/unit_of_work"
	"schoolops/internal/core/domain/user"
	"schoolops/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL        = "alice@onmyowntechnology.com"
	TOKEN        = "test-reset-token"
	OLD_PASSWORD = "old-password"
	NEW_PASSWORD = "new-password"
)

var Now time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	Uow            *uow.FakeUnitOfWork
	PasswordHasher *user.FakePasswordHasher
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Uow = uow.NewFakeUnitOfWork()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.Uow,
		suite.Uow.Context.ResetTokenRepository,
		suite.PasswordHasher,
		func() time.Time { return Now },
	)
}

func TestResetPasswordService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccessPasswordUpdatedAndTokenDeleted() {
	s.createUser(EMAIL, OLD_PASSWORD)
	s.createToken(EMAIL, TOKEN, Now.Add(30*time.Minute))

	_, err := s.Service.Run(
		context.Background(),
		Input{Token: user.ResetToken(TOKEN), NewPassword: user.RawPassword(NEW_PASSWORD)},
	)

	s.Nil(err)
	s.True(s.Uow.Context.WasCommitCalled)
	s.Equal(0, len(s.Uow.Context.ResetTokenRepository.Tokens))

	u, err := s.Uow.Context.UserRepository.GetByEmail(context.Background(), c.NewEmail(EMAIL))
	s.Nil(err)
	s.True(s.PasswordHasher.ValidatePassword(user.RawPassword(NEW_PASSWORD), u.PasswordHash))
	s.False(s.PasswordHasher.ValidatePassword(user.RawPassword(OLD_PASSWORD), u.PasswordHash))
}

func (s *testSuite) TestUnknownToken() {
	s.createUser(EMAIL, OLD_PASSWORD)

	_, err := s.Service.Run(
		context.Background(),
		Input{Token: user.ResetToken("no-such-token"), NewPassword: user.RawPassword(NEW_PASSWORD)},
	)

	s.ErrorIs(err, user.ErrResetTokenDoesNotExist)
	s.False(s.Uow.Context.WasCommitCalled)
}

func (s *testSuite) TestExpiredTokenRejectedAndLeftInPlace() {
	s.createUser(EMAIL, OLD_PASSWORD)
	s.createToken(EMAIL, TOKEN, Now.Add(-time.Minute))

	_, err := s.Service.Run(
		context.Background(),
		Input{Token: user.ResetToken(TOKEN), NewPassword: user.RawPassword(NEW_PASSWORD)},
	)

	s.ErrorIs(err, user.ErrResetTokenExpired)
	s.Equal(1, len(s.Uow.Context.ResetTokenRepository.Tokens))
	s.False(s.Uow.Context.WasCommitCalled)

	u, getErr := s.Uow.Context.UserRepository.GetByEmail(context.Background(), c.NewEmail(EMAIL))
	s.Nil(getErr)
	s.True(s.PasswordHasher.ValidatePassword(user.RawPassword(OLD_PASSWORD), u.PasswordHash))
}

func (s *testSuite) TestTokenExpiringExactlyNowRejected() {
	s.createUser(EMAIL, OLD_PASSWORD)
	s.createToken(EMAIL, TOKEN, Now)

	_, err := s.Service.Run(
		context.Background(),
		Input{Token: user.ResetToken(TOKEN), NewPassword: user.RawPassword(NEW_PASSWORD)},
	)

	s.ErrorIs(err, user.ErrResetTokenExpired)
}

func (s *testSuite) TestTokenConsumedAtMostOnce() {
	s.createUser(EMAIL, OLD_PASSWORD)
	s.createToken(EMAIL, TOKEN, Now.Add(30*time.Minute))

	_, err := s.Service.Run(
		context.Background(),
		Input{Token: user.ResetToken(TOKEN), NewPassword: user.RawPassword(NEW_PASSWORD)},
	)
	s.Nil(err)

	_, err = s.Service.Run(
		context.Background(),
		Input{Token: user.ResetToken(TOKEN), NewPassword: user.RawPassword("yet-another")},
	)
	s.ErrorIs(err, user.ErrResetTokenDoesNotExist)
}

func (s *testSuite) TestConsumingOneTokenKeepsOthersAlive() {
	s.createUser(EMAIL, OLD_PASSWORD)
	s.createToken(EMAIL, TOKEN, Now.Add(30*time.Minute))
	s.createToken(EMAIL, "second-reset-token", Now.Add(30*time.Minute))

	_, err := s.Service.Run(
		context.Background(),
		Input{Token: user.ResetToken(TOKEN), NewPassword: user.RawPassword(NEW_PASSWORD)},
	)
	s.Nil(err)

	_, err = s.Service.Run(
		context.Background(),
		Input{Token: user.ResetToken("second-reset-token"), NewPassword: user.RawPassword("third-password")},
	)
	s.Nil(err)
}

func (s *testSuite) TestDeletedUserStillConsumesToken() {
	s.createToken(EMAIL, TOKEN, Now.Add(30*time.Minute))

	_, err := s.Service.Run(
		context.Background(),
		Input{Token: user.ResetToken(TOKEN), NewPassword: user.RawPassword(NEW_PASSWORD)},
	)

	s.Nil(err)
	s.True(s.Uow.Context.WasCommitCalled)
	s.Equal(0, len(s.Uow.Context.ResetTokenRepository.Tokens))
}

func (s *testSuite) TestCommitFailureSurfacesError() {
	s.createUser(EMAIL, OLD_PASSWORD)
	s.createToken(EMAIL, TOKEN, Now.Add(30*time.Minute))
	s.Uow.Context.CommitError = true

	_, err := s.Service.Run(
		context.Background(),
		Input{Token: user.ResetToken(TOKEN), NewPassword: user.RawPassword(NEW_PASSWORD)},
	)

	s.NotNil(err)
	s.True(s.Uow.Context.WasRollbackCalled)
}

func (s *testSuite) createUser(email string, password string) user.User {
	hash, err := s.PasswordHasher.HashPassword(user.RawPassword(password))
	s.Nil(err)
	u, err := s.Uow.Context.UserRepository.Create(context.Background(), user.CreateUserInput{
		Email:        c.NewEmail(email),
		PasswordHash: hash,
		Role:         user.RoleUser,
	})
	s.Nil(err)
	return u
}

func (s *testSuite) createToken(email string, token string, expiresAt time.Time) {
	_, err := s.Uow.Context.ResetTokenRepository.Create(context.Background(), user.CreateResetTokenInput{
		Email:     c.NewEmail(email),
		Token:     user.ResetToken(token),
		ExpiresAt: expiresAt,
	})
	s.Nil(err)
}
