package ticket

import (
	"crypto/rand"

	"tickethub/internal/pkg/errs"

	"github.com/mr-tron/base58"
)

// codeEntropyBytes gives 96 bits of entropy per code; collisions are left to
// the unique index as a belt-and-braces check.
const codeEntropyBytes = 12

const codePrefix = "TKT-"

type CodeGenerator struct{}

func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{}
}

// NewCode returns an unguessable, human-typable ticket code.
func (g *CodeGenerator) NewCode() (string, error) {
	buf := make([]byte, codeEntropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to read random bytes for ticket code")
	}
	return codePrefix + base58.Encode(buf), nil
}
