// internal/models/user_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndCheckPassword(t *testing.T) {
	user := &User{Email: "customer@example.com"}

	err := user.SetPassword("Str0ng!pass")
	assert.NoError(t, err)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "Str0ng!pass", user.PasswordHash)

	assert.NoError(t, user.CheckPassword("Str0ng!pass"))
	assert.Error(t, user.CheckPassword("wrong-password"))
}
