package school

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

type FakeRepository struct {
	Schools     []School
	ReturnError bool
	lock        sync.Mutex
	nextID      ID
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Schools: make([]School, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateSchoolInput) (s School, err error) {
	if r.ReturnError {
		return s, fmt.Errorf("could not create school %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	s = School{
		ID:              r.nextID,
		SchoolName:      input.SchoolName,
		Location:        input.Location,
		ReportingBranch: input.ReportingBranch,
		NumStudents:     input.NumStudents,
	}
	r.Schools = append(r.Schools, s)
	return s, nil
}

func (r *FakeRepository) List(ctx context.Context) ([]School, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list schools")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	schools := make([]School, len(r.Schools))
	copy(schools, r.Schools)
	sort.Slice(schools, func(i, j int) bool { return schools[i].SchoolName < schools[j].SchoolName })
	return schools, nil
}

func (r *FakeRepository) ListNames(ctx context.Context) ([]string, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list school names")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	seen := make(map[string]struct{})
	names := make([]string, 0, len(r.Schools))
	for _, s := range r.Schools {
		if _, ok := seen[s.SchoolName]; ok {
			continue
		}
		seen[s.SchoolName] = struct{}{}
		names = append(names, s.SchoolName)
	}
	sort.Strings(names)
	return names, nil
}

func (r *FakeRepository) ListLocations(ctx context.Context, schoolName string) ([]string, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list locations")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	seen := make(map[string]struct{})
	locations := make([]string, 0)
	for _, s := range r.Schools {
		if s.SchoolName != schoolName {
			continue
		}
		if _, ok := seen[s.Location]; ok {
			continue
		}
		seen[s.Location] = struct{}{}
		locations = append(locations, s.Location)
	}
	sort.Strings(locations)
	return locations, nil
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateSchoolInput) error {
	if r.ReturnError {
		return fmt.Errorf("could not update school %d", input.ID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, s := range r.Schools {
		if s.ID == input.ID {
			r.Schools[ix] = School{
				ID:              input.ID,
				SchoolName:      input.SchoolName,
				Location:        input.Location,
				ReportingBranch: input.ReportingBranch,
				NumStudents:     input.NumStudents,
			}
			return nil
		}
	}
	return nil
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) (int64, error) {
	if r.ReturnError {
		return 0, fmt.Errorf("could not delete school %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, s := range r.Schools {
		if s.ID == id {
			r.Schools = append(r.Schools[:ix], r.Schools[ix+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
