package uow

import (
	"context"
	"fmt"
	"schoolops/internal/core/domain/user"
)

type FakeUnitOfWorkContext struct {
	UserRepository       *user.FakeUserRepository
	ResetTokenRepository *user.FakeResetTokenRepository
	WasRollbackCalled    bool
	WasCommitCalled      bool
	CommitError          bool
}

func NewFakeUnitOfWorkContext(
	userRepository *user.FakeUserRepository,
	resetTokenRepository *user.FakeResetTokenRepository,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		UserRepository:       userRepository,
		ResetTokenRepository: resetTokenRepository,
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	if c.CommitError {
		return fmt.Errorf("could not commit")
	}
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) ResetTokens() user.ResetTokenRepository {
	return c.ResetTokenRepository
}

type FakeUnitOfWork struct {
	Context *FakeUnitOfWorkContext
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			user.NewFakeUserRepository(),
			user.NewFakeResetTokenRepository(),
		),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	return u.Context, nil
}
