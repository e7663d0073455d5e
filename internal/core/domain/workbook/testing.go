package workbook

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

type FakeRepository struct {
	Workbooks   []Workbook
	ReturnError bool
	lock        sync.Mutex
	nextID      ID
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Workbooks: make([]Workbook, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateWorkbookInput) (w Workbook, err error) {
	if r.ReturnError {
		return w, fmt.Errorf("could not create workbook %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	w = Workbook{ID: r.nextID, Grade: input.Grade, Name: input.Name, Quantity: input.Quantity}
	r.Workbooks = append(r.Workbooks, w)
	return w, nil
}

func (r *FakeRepository) List(ctx context.Context) ([]Workbook, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list workbooks")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	workbooks := make([]Workbook, len(r.Workbooks))
	copy(workbooks, r.Workbooks)
	return workbooks, nil
}

func (r *FakeRepository) ListGrades(ctx context.Context) ([]string, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list grades")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	seen := make(map[string]struct{})
	grades := make([]string, 0)
	for _, w := range r.Workbooks {
		if _, ok := seen[w.Grade]; ok {
			continue
		}
		seen[w.Grade] = struct{}{}
		grades = append(grades, w.Grade)
	}
	sort.Strings(grades)
	return grades, nil
}

func (r *FakeRepository) ListNamesByGrade(ctx context.Context, grade string) ([]string, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list workbook names")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, w := range r.Workbooks {
		if w.Grade != grade {
			continue
		}
		if _, ok := seen[w.Name]; ok {
			continue
		}
		seen[w.Name] = struct{}{}
		names = append(names, w.Name)
	}
	sort.Strings(names)
	return names, nil
}

func (r *FakeRepository) UpdateQuantity(ctx context.Context, id ID, quantity int) error {
	if r.ReturnError {
		return fmt.Errorf("could not update workbook %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, w := range r.Workbooks {
		if w.ID == id {
			r.Workbooks[ix].Quantity = quantity
			return nil
		}
	}
	return nil
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete workbook %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, w := range r.Workbooks {
		if w.ID == id {
			r.Workbooks = append(r.Workbooks[:ix], r.Workbooks[ix+1:]...)
			return nil
		}
	}
	return nil
}
