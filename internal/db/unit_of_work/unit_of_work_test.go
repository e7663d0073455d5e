package uow

import (
	"context"
	"testing"
	"time"

	c "schoolops/internal/core/domain/common"
	"schoolops/internal/core/domain/user"
	"schoolops/internal/db"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	EMAIL = "test@onmyowntechnology.com"
	TOKEN = "test-reset-token"
)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	uow  *PgxUnitOfWork
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.uow = NewPgxUnitOfWork(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUnitOfWork(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCommitAppliesPasswordUpdateAndTokenConsumption() {
	s.createUserAndToken()
	ctx := context.Background()

	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)
	defer uow.Rollback(ctx)

	rowsAffected, err := uow.Users().SetPasswordByEmail(ctx, c.Email(EMAIL), user.PasswordHash("new-hash"))
	s.Require().Nil(err)
	s.Equal(int64(1), rowsAffected)

	rowsAffected, err = uow.ResetTokens().DeleteByToken(ctx, user.ResetToken(TOKEN))
	s.Require().Nil(err)
	s.Equal(int64(1), rowsAffected)

	s.Require().Nil(uow.Commit(ctx))

	u, err := NewPgxUnitOfWork(s.pool).Begin(ctx)
	s.Require().Nil(err)
	defer u.Rollback(ctx)
	got, err := u.Users().GetByEmail(ctx, c.Email(EMAIL))
	s.Nil(err)
	s.Equal(user.PasswordHash("new-hash"), got.PasswordHash)
	_, err = u.ResetTokens().GetByToken(ctx, user.ResetToken(TOKEN))
	s.ErrorIs(err, user.ErrResetTokenDoesNotExist)
}

func (s *testSuite) TestRollbackDiscardsBothWrites() {
	s.createUserAndToken()
	ctx := context.Background()

	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)

	_, err = uow.Users().SetPasswordByEmail(ctx, c.Email(EMAIL), user.PasswordHash("new-hash"))
	s.Require().Nil(err)
	_, err = uow.ResetTokens().DeleteByToken(ctx, user.ResetToken(TOKEN))
	s.Require().Nil(err)

	s.Require().Nil(uow.Rollback(ctx))

	check, err := s.uow.Begin(ctx)
	s.Require().Nil(err)
	defer check.Rollback(ctx)
	got, err := check.Users().GetByEmail(ctx, c.Email(EMAIL))
	s.Nil(err)
	s.Equal(user.PasswordHash("old-hash"), got.PasswordHash)
	rec, err := check.ResetTokens().GetByToken(ctx, user.ResetToken(TOKEN))
	s.Nil(err)
	s.Equal(user.ResetToken(TOKEN), rec.Token)
}

func (s *testSuite) createUserAndToken() {
	s.T().Helper()

	ctx := context.Background()
	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.FailNowf("could not begin uow", "%v", err)
	}
	defer uow.Rollback(ctx)

	_, err = uow.Users().Create(ctx, user.CreateUserInput{
		Email:        c.Email(EMAIL),
		PasswordHash: user.PasswordHash("old-hash"),
		Role:         user.RoleUser,
	})
	if err != nil {
		s.FailNowf("could not create user", "%v", err)
	}

	_, err = uow.ResetTokens().Create(ctx, user.CreateResetTokenInput{
		Email:     c.Email(EMAIL),
		Token:     user.ResetToken(TOKEN),
		ExpiresAt: time.Now().UTC().Add(30 * time.Minute),
	})
	if err != nil {
		s.FailNowf("could not create reset token", "%v", err)
	}

	uow.Commit(ctx)
}
