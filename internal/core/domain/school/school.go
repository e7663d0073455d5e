package school

import (
	"context"
	"errors"
)

type ID int64

// School is one catalog row: a school name / location pair with the branch
// that reports its book counts.
type School struct {
	ID              ID
	SchoolName      string
	Location        string
	ReportingBranch string
	NumStudents     string
}

type CreateSchoolInput struct {
	SchoolName      string
	Location        string
	ReportingBranch string
	NumStudents     string
}

type UpdateSchoolInput struct {
	ID              ID
	SchoolName      string
	Location        string
	ReportingBranch string
	NumStudents     string
}

var ErrSchoolDoesNotExist = errors.New("school does not exist")

type Repository interface {
	Create(ctx context.Context, input CreateSchoolInput) (School, error)
	List(ctx context.Context) ([]School, error)
	ListNames(ctx context.Context) ([]string, error)
	ListLocations(ctx context.Context, schoolName string) ([]string, error)
	Update(ctx context.Context, input UpdateSchoolInput) error
	Delete(ctx context.Context, id ID) (rowsAffected int64, err error)
}
