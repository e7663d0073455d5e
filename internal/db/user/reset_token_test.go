package user

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

const TOKEN = "test-reset-token"

var NOW time.Time = time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

type resetTokenTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxResetTokenRepository
}

func (suite *resetTokenTestSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxResetTokenRepository(suite.pool)
}

func (suite *resetTokenTestSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *resetTokenTestSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxResetTokenRepository(t *testing.T) {
	suite.Run(t, new(resetTokenTestSuite))
}

func (s *resetTokenTestSuite) TestCreateAndGetByToken() {
	created := s.createToken(TOKEN, NOW.Add(30*time.Minute))

	rec, err := s.repo.GetByToken(context.Background(), user.ResetToken(TOKEN))

	s.Nil(err)
	s.Equal(created.ID, rec.ID)
	s.Equal(c.Email(EMAIL), rec.Email)
	s.Equal(user.ResetToken(TOKEN), rec.Token)
	s.True(created.ExpiresAt.Equal(rec.ExpiresAt))
}

func (s *resetTokenTestSuite) TestGetByTokenDoesNotExist() {
	s.createToken(TOKEN, NOW.Add(30*time.Minute))

	_, err := s.repo.GetByToken(context.Background(), user.ResetToken("unknown-token"))

	s.ErrorIs(err, user.ErrResetTokenDoesNotExist)
}

func (s *resetTokenTestSuite) TestSameEmailMayHoldSeveralTokens() {
	s.createToken("token-1", NOW.Add(30*time.Minute))
	s.createToken("token-2", NOW.Add(30*time.Minute))

	rec1, err1 := s.repo.GetByToken(context.Background(), user.ResetToken("token-1"))
	rec2, err2 := s.repo.GetByToken(context.Background(), user.ResetToken("token-2"))

	s.Nil(err1)
	s.Nil(err2)
	s.NotEqual(rec1.ID, rec2.ID)
}

func (s *resetTokenTestSuite) TestDeleteByToken() {
	s.createToken(TOKEN, NOW.Add(30*time.Minute))

	rowsAffected, err := s.repo.DeleteByToken(context.Background(), user.ResetToken(TOKEN))

	s.Nil(err)
	s.Equal(int64(1), rowsAffected)
	_, err = s.repo.GetByToken(context.Background(), user.ResetToken(TOKEN))
	s.ErrorIs(err, user.ErrResetTokenDoesNotExist)
}

func (s *resetTokenTestSuite) TestDeleteByTokenIsIdempotent() {
	s.createToken(TOKEN, NOW.Add(30*time.Minute))

	_, err := s.repo.DeleteByToken(context.Background(), user.ResetToken(TOKEN))
	s.Nil(err)

	rowsAffected, err := s.repo.DeleteByToken(context.Background(), user.ResetToken(TOKEN))
	s.Nil(err)
	s.Equal(int64(0), rowsAffected)
}

func (s *resetTokenTestSuite) TestPurgeExpired() {
	s.createToken("expired-token", NOW.Add(-time.Minute))
	s.createToken("boundary-token", NOW)
	s.createToken("live-token", NOW.Add(30*time.Minute))

	rowsAffected, err := s.repo.PurgeExpired(context.Background(), NOW)

	s.Nil(err)
	s.Equal(int64(2), rowsAffected)
	_, err = s.repo.GetByToken(context.Background(), user.ResetToken("live-token"))
	s.Nil(err)
}

func (s *resetTokenTestSuite) createToken(token string, expiresAt time.Time) user.ResetTokenRecord {
	rec, err := s.repo.Create(context.Background(), user.CreateResetTokenInput{
		Email:     c.Email(EMAIL),
		Token:     user.ResetToken(token),
		ExpiresAt: expiresAt,
	})
	s.Require().Nil(err)
	return rec
}
