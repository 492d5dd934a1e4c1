package services

import (
	"math/rand"
	"strings"
	"time"

	"github.com/YSWikcramatantri/Official-Website/internal/models"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// maxCodeAttempts bounds the collision-retry loop. With a 6-character code
// the space holds 36^6 values, so hitting this cap means the store is
// effectively full or the exists check is broken.
const maxCodeAttempts = 50

type CodeGenerator struct {
	rand *rand.Rand
}

func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Generate returns a random code of the given length drawn from [A-Z0-9].
func (g *CodeGenerator) Generate(length int) string {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(codeCharset[g.rand.Intn(len(codeCharset))])
	}
	return sb.String()
}

// GenerateUnique retries Generate until existsFn reports the code unused.
// The store's unique index remains the authoritative guard; this loop only
// keeps the common case collision-free.
func (g *CodeGenerator) GenerateUnique(length int, existsFn func(string) (bool, error)) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := g.Generate(length)
		exists, err := existsFn(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", models.ErrCodeSpaceExhausted
}
