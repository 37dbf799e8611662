/* pkg/crypto/password_test.go */

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword(t *testing.T) {
	for _, length := range []int{4, 12, 20, 64} {
		pw, err := GeneratePassword(length)
		require.NoError(t, err)
		assert.Len(t, pw, length)

		assert.True(t, strings.ContainsAny(pw, "abcdefghijklmnopqrstuvwxyz"), "no lowercase in %q", pw)
		assert.True(t, strings.ContainsAny(pw, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"), "no uppercase in %q", pw)
		assert.True(t, strings.ContainsAny(pw, "0123456789"), "no digit in %q", pw)
		assert.True(t, strings.ContainsAny(pw, "!@#$%&*?"), "no symbol in %q", pw)
	}
}

func TestGeneratePasswordTooShort(t *testing.T) {
	for _, length := range []int{0, 1, 3, -1} {
		_, err := GeneratePassword(length)
		assert.Error(t, err, "length %d", length)
	}
}

func TestGeneratePasswordUnique(t *testing.T) {
	a, err := GeneratePassword(20)
	require.NoError(t, err)
	b, err := GeneratePassword(20)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
