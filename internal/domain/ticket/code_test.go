//go:build unit

package ticket_test

import (
	"strings"
	"testing"

	"tickethub/internal/domain/ticket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	gen := ticket.NewCodeGenerator()

	t.Run("code carries the ticket prefix", func(t *testing.T) {
		code, err := gen.NewCode()
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(code, "TKT-"))
		assert.Greater(t, len(code), len("TKT-"))
	})

	t.Run("codes do not repeat", func(t *testing.T) {
		seen := make(map[string]struct{}, 1000)
		for i := 0; i < 1000; i++ {
			code, err := gen.NewCode()
			require.NoError(t, err)
			_, dup := seen[code]
			require.False(t, dup, "duplicate code %s", code)
			seen[code] = struct{}{}
		}
	})

	t.Run("code body is base58", func(t *testing.T) {
		code, err := gen.NewCode()
		require.NoError(t, err)
		body := strings.TrimPrefix(code, "TKT-")
		assert.NotContains(t, body, "0")
		assert.NotContains(t, body, "O")
		assert.NotContains(t, body, "I")
		assert.NotContains(t, body, "l")
	})
}
