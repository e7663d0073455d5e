package loginwithemail

import (
	"context"
	c "schoolops/internal/core/domain/common"
	"schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/user"
	"schoolops/internal/core/services"
	"testing"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL          = "alice@onmyowntechnology.com"
	PASSWORD       = "test-password"
	ALLOWED_SUFFIX = "@onmyowntechnology.com"
)

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	PasswordHasher *user.FakePasswordHasher
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.PasswordHasher,
		ALLOWED_SUFFIX,
	)
}

func TestLogInWithEmailService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	s.createUser(EMAIL, PASSWORD, user.RoleAdministrator)

	result, err := s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword(PASSWORD)},
	)

	s.Nil(err)
	s.Equal(user.RoleAdministrator, result.Role)
	s.Equal(c.Email(EMAIL), result.Email)
}

func (s *testSuite) TestInvalidPassword() {
	s.createUser(EMAIL, PASSWORD, user.RoleUser)

	_, err := s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword("wrong-password")},
	)

	s.ErrorIs(err, user.ErrInvalidCredentials)
}

func (s *testSuite) TestUnknownUserGetsSameError() {
	_, err := s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail("ghost@onmyowntechnology.com"), Password: user.RawPassword(PASSWORD)},
	)

	s.ErrorIs(err, user.ErrInvalidCredentials)
	// The password is still hashed so the miss is not observably faster.
	s.Equal(1, s.PasswordHasher.HashCallCount)
}

func (s *testSuite) TestDomainGateBeforeStoreLookup() {
	s.createUser(EMAIL, PASSWORD, user.RoleUser)

	_, err := s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail("alice@other.com"), Password: user.RawPassword(PASSWORD)},
	)

	s.ErrorIs(err, user.ErrEmailDomainNotAllowed)
	s.Equal(0, s.UserRepository.GetByEmailCalls)
}

func (s *testSuite) TestPasswordHashNeverLogged() {
	u := s.createUser(EMAIL, PASSWORD, user.RoleUser)

	_, err := s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword(PASSWORD)},
	)

	s.Nil(err)
	s.NotContains(s.Logger.Dump(), string(u.PasswordHash))
}

func (s *testSuite) createUser(email string, password string, role user.Role) user.User {
	hash, err := s.PasswordHasher.HashPassword(user.RawPassword(password))
	s.Nil(err)
	s.PasswordHasher.HashCallCount = 0
	u, err := s.UserRepository.Create(context.Background(), user.CreateUserInput{
		Email:        c.NewEmail(email),
		PasswordHash: hash,
		Role:         role,
	})
	s.Nil(err)
	return u
}
