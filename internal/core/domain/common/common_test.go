package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert := require.New(t)

	optionalInt := NewOptional(42, true)
	assert.Equal(42, optionalInt.Value)
	assert.True(optionalInt.IsPresent)

	optionalString := NewOptional("foo", false)
	assert.Equal("foo", optionalString.Value)
	assert.False(optionalString.IsPresent)
}

func TestNewEmailTrimsButKeepsCase(t *testing.T) {
	assert := require.New(t)

	assert.Equal(Email("Alice@onmyowntechnology.com"), NewEmail("  Alice@onmyowntechnology.com\t"))
	assert.Equal(Email(""), NewEmail("   "))
}

func TestEmailHasSuffix(t *testing.T) {
	assert := require.New(t)

	assert.True(NewEmail("alice@onmyowntechnology.com").HasSuffix("@onmyowntechnology.com"))
	assert.False(NewEmail("alice@other.com").HasSuffix("@onmyowntechnology.com"))
}
