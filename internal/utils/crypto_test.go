// internal/utils/crypto_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomString(t *testing.T) {
	a, err := GenerateRandomString(16)
	assert.NoError(t, err)
	assert.Len(t, a, 16)

	b, err := GenerateRandomString(16)
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerateActivationToken(t *testing.T) {
	token, err := GenerateActivationToken()
	assert.NoError(t, err)
	assert.Len(t, token, 32)

	for _, r := range token {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		assert.True(t, isAlnum, "unexpected character %q in token", r)
	}
}
