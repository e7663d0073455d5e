package common

import (
	"fmt"
	"strings"
)

type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func (p *Optional[T]) String() string {
	if !p.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", p.Value)
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}

type Email string

// NewEmail trims surrounding whitespace only. Existing rows were stored
// without case normalization, so lowercasing here would orphan them.
func NewEmail(rawEmail string) Email {
	return Email(strings.TrimSpace(rawEmail))
}

func (e Email) HasSuffix(suffix string) bool {
	return strings.HasSuffix(string(e), suffix)
}
