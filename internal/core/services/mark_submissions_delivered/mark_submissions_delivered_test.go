package marksubmissionsdelivered

import (
	"context"
	"schoolops/internal/core/domain/logging"
	"schoolops/internal/core/domain/submission"
	"schoolops/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Now time.Time = time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger     *logging.FakeLogger
	Repository *submission.FakeRepository
	Service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Repository = submission.NewFakeRepository()
	suite.Service = New(suite.Logger, suite.Repository)
}

func TestMarkSubmissionsDeliveredService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) createSubmission(schoolName string) submission.Submission {
	created, err := s.Repository.Create(context.Background(), submission.CreateSubmissionInput{
		SchoolName:  schoolName,
		SubmittedAt: Now,
	})
	s.Nil(err)
	return created
}

func (s *testSuite) TestMarksDelivered() {
	first := s.createSubmission("First School")
	second := s.createSubmission("Second School")

	result, err := s.Service.Run(context.Background(), Input{
		IDs:       []submission.ID{first.ID, second.ID},
		Delivered: submission.DeliveredYes,
	})

	s.Nil(err)
	s.Equal(int64(2), result.Updated)
	s.Equal(submission.DeliveredYes, s.Repository.Submissions[0].Delivered)
	s.Equal(submission.DeliveredYes, s.Repository.Submissions[1].Delivered)
}

func (s *testSuite) TestMarksUndelivered() {
	created := s.createSubmission("Test School")

	_, err := s.Service.Run(context.Background(), Input{
		IDs:       []submission.ID{created.ID},
		Delivered: submission.DeliveredYes,
	})
	s.Nil(err)

	result, err := s.Service.Run(context.Background(), Input{
		IDs:       []submission.ID{created.ID},
		Delivered: submission.DeliveredNo,
	})

	s.Nil(err)
	s.Equal(int64(1), result.Updated)
	s.Equal(submission.DeliveredNo, s.Repository.Submissions[0].Delivered)
}

func (s *testSuite) TestUnknownIDsNotCounted() {
	created := s.createSubmission("Test School")

	result, err := s.Service.Run(context.Background(), Input{
		IDs:       []submission.ID{created.ID, created.ID + 100},
		Delivered: submission.DeliveredYes,
	})

	s.Nil(err)
	s.Equal(int64(1), result.Updated)
}

func (s *testSuite) TestRepositoryError() {
	s.Repository.ReturnError = true

	_, err := s.Service.Run(context.Background(), Input{
		IDs:       []submission.ID{1},
		Delivered: submission.DeliveredYes,
	})

	s.NotNil(err)
}
