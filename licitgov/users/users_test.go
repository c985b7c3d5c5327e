package users

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUser_CheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &User{PasswordHash: string(hash)}

	assert.True(t, user.CheckPassword("admin123"))
	assert.True(t, user.CheckPassword("  admin123  "), "candidate passwords are trimmed")
	assert.False(t, user.CheckPassword("admin124"))
	assert.False(t, user.CheckPassword(""))
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
	assert.False(t, (&User{}).IsAdmin())
}

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	field, ok := reflect.TypeOf(User{}).FieldByName("PasswordHash")
	require.True(t, ok)
	assert.Equal(t, "-", field.Tag.Get("json"))
}
