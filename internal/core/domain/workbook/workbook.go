package workbook

import (
	"context"
	"errors"
)

type ID int64

type Workbook struct {
	ID       ID
	Grade    string
	Name     string
	Quantity int
}

type CreateWorkbookInput struct {
	Grade    string
	Name     string
	Quantity int
}

var ErrWorkbookDoesNotExist = errors.New("workbook does not exist")

type Repository interface {
	Create(ctx context.Context, input CreateWorkbookInput) (Workbook, error)
	List(ctx context.Context) ([]Workbook, error)
	ListGrades(ctx context.Context) ([]string, error)
	ListNamesByGrade(ctx context.Context, grade string) ([]string, error)
	UpdateQuantity(ctx context.Context, id ID, quantity int) error
	Delete(ctx context.Context, id ID) error
}
