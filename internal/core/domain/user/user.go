package user

import (
	c "schoolops/internal/core/domain/common"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

// Role is an opaque tag; authorization semantics live outside this backend.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleUser          Role = "user"
)

type User struct {
	ID           ID
	Name         c.Optional[string]
	Email        c.Email
	PasswordHash PasswordHash
	Role         Role
}

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}
