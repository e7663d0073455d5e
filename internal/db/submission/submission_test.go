package submission

import (
	"context"
	"testing"
	"time"

	"schoolops/internal/core/domain/submission"
	"schoolops/internal/db"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

var NOW time.Time = time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxSubmissionRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxSubmissionRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCreateDefaultsToNotDelivered() {
	created := s.createSubmission("Springfield Elementary", NOW)

	s.NotZero(created.ID)
	s.Equal(submission.DeliveredNo, created.Delivered)
	s.True(NOW.Equal(created.SubmittedAt))
}

func (s *testSuite) TestListOrdersByMostRecentFirst() {
	s.createSubmission("first", NOW)
	s.createSubmission("second", NOW.Add(time.Hour))

	submissions, err := s.repo.List(context.Background())

	s.Nil(err)
	s.Require().Len(submissions, 2)
	s.Equal("second", submissions[0].SchoolName)
	s.Equal("first", submissions[1].SchoolName)
}

func (s *testSuite) TestDelete() {
	created := s.createSubmission("Springfield Elementary", NOW)

	err := s.repo.Delete(context.Background(), created.ID)

	s.Nil(err)
	submissions, err := s.repo.List(context.Background())
	s.Nil(err)
	s.Len(submissions, 0)
}

func (s *testSuite) TestDeleteDoesNotExist() {
	err := s.repo.Delete(context.Background(), 111222)

	s.ErrorIs(err, submission.ErrSubmissionDoesNotExist)
}

func (s *testSuite) TestMarkDelivered() {
	first := s.createSubmission("first", NOW)
	second := s.createSubmission("second", NOW)
	third := s.createSubmission("third", NOW)

	rowsAffected, err := s.repo.MarkDelivered(
		context.Background(),
		[]submission.ID{first.ID, third.ID, 111222},
		submission.DeliveredYes,
	)

	s.Nil(err)
	s.Equal(int64(2), rowsAffected)
	submissions, err := s.repo.List(context.Background())
	s.Require().Nil(err)
	delivered := make(map[submission.ID]string)
	for _, sub := range submissions {
		delivered[sub.ID] = sub.Delivered
	}
	s.Equal(submission.DeliveredYes, delivered[first.ID])
	s.Equal(submission.DeliveredNo, delivered[second.ID])
	s.Equal(submission.DeliveredYes, delivered[third.ID])
}

func (s *testSuite) createSubmission(schoolName string, at time.Time) submission.Submission {
	created, err := s.repo.Create(context.Background(), submission.CreateSubmissionInput{
		SchoolName:  schoolName,
		Location:    "Springfield",
		Grade:       "Grade 3",
		Term:        "Term 1",
		Workbook:    "Robotics Basics",
		Count:       40,
		Remark:      "",
		SubmittedBy: "field@onmyowntechnology.com",
		SubmittedAt: at,
	})
	s.Require().Nil(err)
	return created
}
