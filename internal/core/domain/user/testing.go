package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	c "schoolops/internal/core/domain/common"
	"sync"
	"time"
)

type FakePasswordHasher struct {
	HashCallCount int
}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	h.HashCallCount++
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	hasher := md5.New()
	io.WriteString(hasher, string(password))
	return PasswordHash(fmt.Sprintf("%x", hasher.Sum(nil))) == hash
}

type FakeResetTokenGenerator struct {
	Token ResetToken
}

func NewFakeResetTokenGenerator(token string) *FakeResetTokenGenerator {
	return &FakeResetTokenGenerator{Token: ResetToken(token)}
}

func (g *FakeResetTokenGenerator) GenerateResetToken() ResetToken {
	return g.Token
}

type SentResetToken struct {
	Email c.Email
	Token ResetToken
}

type FakeResetTokenSender struct {
	Sent        []SentResetToken
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeResetTokenSender() *FakeResetTokenSender {
	return &FakeResetTokenSender{}
}

func (s *FakeResetTokenSender) SendResetToken(ctx context.Context, email c.Email, token ResetToken) error {
	if s.ReturnError {
		return fmt.Errorf("could not send reset token to %s", email)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentResetToken{Email: email, Token: token})
	return nil
}

func (s *FakeResetTokenSender) SentCount() int {
	return len(s.Sent)
}

type FakeUserRepository struct {
	Users            []User
	ReturnError      bool
	GetByEmailCalls  int
	SetPasswordCalls int
	lock             sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:           maxID + 1,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		Role:         input.Role,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.GetByEmailCalls++
	if r.ReturnError {
		return u, fmt.Errorf("could not get user by email %s", email)
	}
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) List(ctx context.Context) ([]User, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list users")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	users := make([]User, len(r.Users))
	copy(users, r.Users)
	return users, nil
}

func (r *FakeUserRepository) Update(ctx context.Context, input UpdateUserInput) error {
	if r.ReturnError {
		return fmt.Errorf("could not update user %d", input.ID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == input.ID {
			r.Users[ix] = User{
				ID:           input.ID,
				Name:         input.Name,
				Email:        input.Email,
				PasswordHash: input.PasswordHash,
				Role:         input.Role,
			}
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) Delete(ctx context.Context, id ID) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users = append(r.Users[:ix], r.Users[ix+1:]...)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPasswordByEmail(
	ctx context.Context,
	email c.Email,
	hash PasswordHash,
) (int64, error) {
	if r.ReturnError {
		return 0, fmt.Errorf("could not set password for %s", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.SetPasswordCalls++
	affected := int64(0)
	for ix, u := range r.Users {
		if u.Email == email {
			r.Users[ix].PasswordHash = hash
			affected++
		}
	}
	return affected, nil
}

type FakeResetTokenRepository struct {
	Tokens      []ResetTokenRecord
	ReturnError bool
	lock        sync.Mutex
	nextID      int64
}

func NewFakeResetTokenRepository() *FakeResetTokenRepository {
	return &FakeResetTokenRepository{Tokens: make([]ResetTokenRecord, 0, 10)}
}

func (r *FakeResetTokenRepository) Create(
	ctx context.Context,
	input CreateResetTokenInput,
) (record ResetTokenRecord, err error) {
	if r.ReturnError {
		return record, fmt.Errorf("could not create reset token for %s", input.Email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	record = ResetTokenRecord{
		ID:        r.nextID,
		Email:     input.Email,
		Token:     input.Token,
		ExpiresAt: input.ExpiresAt,
	}
	r.Tokens = append(r.Tokens, record)
	return record, nil
}

func (r *FakeResetTokenRepository) GetByToken(
	ctx context.Context,
	token ResetToken,
) (record ResetTokenRecord, err error) {
	if r.ReturnError {
		return record, fmt.Errorf("could not get reset token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, record := range r.Tokens {
		if record.Token == token {
			return record, nil
		}
	}
	return record, ErrResetTokenDoesNotExist
}

func (r *FakeResetTokenRepository) DeleteByToken(ctx context.Context, token ResetToken) (int64, error) {
	if r.ReturnError {
		return 0, fmt.Errorf("could not delete reset token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, record := range r.Tokens {
		if record.Token == token {
			r.Tokens = append(r.Tokens[:ix], r.Tokens[ix+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *FakeResetTokenRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	if r.ReturnError {
		return 0, fmt.Errorf("could not purge reset tokens")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	kept := r.Tokens[:0]
	purged := int64(0)
	for _, record := range r.Tokens {
		if record.ExpiresAt.After(now) {
			kept = append(kept, record)
		} else {
			purged++
		}
	}
	r.Tokens = kept
	return purged, nil
}
