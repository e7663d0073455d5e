package school

import (
	"context"
	"testing"

	"schoolops/internal/core/domain/school"
	"schoolops/internal/db"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxSchoolRepository
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

func TestPgxSchoolRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCreateAndList() {
	s.createSchool("Zeta School", "Pune")
	s.createSchool("Alpha School", "Mumbai")

	schools, err := s.repo.List(context.Background())

	s.Nil(err)
	s.Require().Len(schools, 2)
	s.Equal("Alpha School", schools[0].SchoolName)
	s.Equal("Zeta School", schools[1].SchoolName)
}

func (s *testSuite) TestListNamesDeduplicates() {
	s.createSchool("Alpha School", "Mumbai")
	s.createSchool("Alpha School", "Pune")
	s.createSchool("Beta School", "Nagpur")

	names, err := s.repo.ListNames(context.Background())

	s.Nil(err)
	s.Equal([]string{"Alpha School", "Beta School"}, names)
}

func (s *testSuite) TestListLocationsFiltersBySchool() {
	s.createSchool("Alpha School", "Mumbai")
	s.createSchool("Alpha School", "Pune")
	s.createSchool("Beta School", "Nagpur")

	locations, err := s.repo.ListLocations(context.Background(), "Alpha School")

	s.Nil(err)
	s.Equal([]string{"Mumbai", "Pune"}, locations)
}

func (s *testSuite) TestUpdate() {
	created := s.createSchool("Alpha School", "Mumbai")

	err := s.repo.Update(context.Background(), school.UpdateSchoolInput{
		ID:              created.ID,
		SchoolName:      "Alpha School",
		Location:        "Thane",
		ReportingBranch: "West",
		NumStudents:     "120",
	})

	s.Nil(err)
	schools, err := s.repo.List(context.Background())
	s.Require().Nil(err)
	s.Require().Len(schools, 1)
	s.Equal("Thane", schools[0].Location)
	s.Equal("West", schools[0].ReportingBranch)
	s.Equal("120", schools[0].NumStudents)
}

func (s *testSuite) TestUpdateDoesNotExist() {
	err := s.repo.Update(context.Background(), school.UpdateSchoolInput{
		ID:         111222,
		SchoolName: "Alpha School",
	})

	s.ErrorIs(err, school.ErrSchoolDoesNotExist)
}

func (s *testSuite) TestDelete() {
	created := s.createSchool("Alpha School", "Mumbai")

	rowsAffected, err := s.repo.Delete(context.Background(), created.ID)

	s.Nil(err)
	s.Equal(int64(1), rowsAffected)

	rowsAffected, err = s.repo.Delete(context.Background(), created.ID)
	s.Nil(err)
	s.Equal(int64(0), rowsAffected)
}

func (s *testSuite) createSchool(name, location string) school.School {
	created, err := s.repo.Create(context.Background(), school.CreateSchoolInput{
		SchoolName:      name,
		Location:        location,
		ReportingBranch: "Central",
		NumStudents:     "100",
	})
	s.Require().Nil(err)
	return created
}
