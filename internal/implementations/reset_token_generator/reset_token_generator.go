package resettokengenerator

import (
	"crypto/rand"
	"encoding/base64"
	"schoolops/internal/core/domain/user"
)

// tokenByteCount gives 192 bits of entropy; the URL-safe alphabet keeps the
// token free of path characters.
const tokenByteCount = 24

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateResetToken() user.ResetToken {
	b := make([]byte, tokenByteCount)
	if _, err := rand.Read(b); err != nil {
		panic("Could not read random bytes for reset token.")
	}
	return user.ResetToken(base64.RawURLEncoding.EncodeToString(b))
}
