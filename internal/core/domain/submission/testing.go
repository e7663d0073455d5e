package submission

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

type FakeRepository struct {
	Submissions []Submission
	ReturnError bool
	lock        sync.Mutex
	nextID      ID
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Submissions: make([]Submission, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateSubmissionInput) (s Submission, err error) {
	if r.ReturnError {
		return s, fmt.Errorf("could not create submission %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	s = Submission{
		ID:          r.nextID,
		SchoolName:  input.SchoolName,
		Location:    input.Location,
		Grade:       input.Grade,
		Term:        input.Term,
		Workbook:    input.Workbook,
		Count:       input.Count,
		Remark:      input.Remark,
		SubmittedBy: input.SubmittedBy,
		SubmittedAt: input.SubmittedAt,
		Delivered:   DeliveredNo,
	}
	r.Submissions = append(r.Submissions, s)
	return s, nil
}

func (r *FakeRepository) List(ctx context.Context) ([]Submission, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list submissions")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	submissions := make([]Submission, len(r.Submissions))
	copy(submissions, r.Submissions)
	sort.Slice(submissions, func(i, j int) bool {
		return submissions[i].SubmittedAt.After(submissions[j].SubmittedAt)
	})
	return submissions, nil
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete submission %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, s := range r.Submissions {
		if s.ID == id {
			r.Submissions = append(r.Submissions[:ix], r.Submissions[ix+1:]...)
			return nil
		}
	}
	return ErrSubmissionDoesNotExist
}

func (r *FakeRepository) MarkDelivered(ctx context.Context, ids []ID, delivered string) (int64, error) {
	if r.ReturnError {
		return 0, fmt.Errorf("could not mark submissions delivered")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	affected := int64(0)
	for _, id := range ids {
		for ix, s := range r.Submissions {
			if s.ID == id {
				r.Submissions[ix].Delivered = delivered
				affected++
			}
		}
	}
	return affected, nil
}

type FakeEventPublisher struct {
	Published []Submission
	lock      sync.Mutex
}

func NewFakeEventPublisher() *FakeEventPublisher {
	return &FakeEventPublisher{}
}

func (p *FakeEventPublisher) PublishSubmitted(ctx context.Context, s Submission) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, s)
}
