package resettokengenerator

import (
	"schoolops/internal/core/domain/user"
	"strings"
	"testing"
)

func TestResetTokenGenerator(t *testing.T) {
	generator := NewGenerator()
	tokens := make(map[user.ResetToken]struct{})
	for i := 0; i < 100; i++ {
		token := generator.GenerateResetToken()
		if string(token) == "" {
			t.Fatal("token must not be empty")
		}
		if _, ok := tokens[token]; ok {
			t.Fatalf("token %v already exists", token)
		}
		tokens[token] = struct{}{}
	}
}

func TestResetTokenIsURLSafe(t *testing.T) {
	generator := NewGenerator()
	for i := 0; i < 100; i++ {
		token := string(generator.GenerateResetToken())
		if strings.ContainsAny(token, "/+=?&#") {
			t.Fatalf("token contains URL-unsafe characters: %v", token)
		}
		// 24 random bytes render as 32 base64 characters.
		if len(token) != 32 {
			t.Fatalf("unexpected token length %d: %v", len(token), token)
		}
	}
}
