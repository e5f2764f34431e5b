package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"passport/internal/core/domain/user"
)

// Session tokens are bearer credentials, so they come from the
// system CSPRNG: 32 random bytes, well above the 128-bit floor.
const tokenLengthBytes = 32

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateSessionToken() user.SessionToken {
	b := make([]byte, tokenLengthBytes)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("could not read random bytes: %v", err))
	}
	return user.SessionToken(base64.RawURLEncoding.EncodeToString(b))
}
