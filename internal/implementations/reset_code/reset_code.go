package resetcode

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"passport/internal/core/domain/user"
)

// 10 random bytes base64-encoded, the same shape the reset flow has
// always mailed out, but sourced from the system CSPRNG.
const codeLengthBytes = 10

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateResetCode() user.ResetCode {
	b := make([]byte, codeLengthBytes)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("could not read random bytes: %v", err))
	}
	return user.ResetCode(base64.StdEncoding.EncodeToString(b))
}
