package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required,min=3"`
	Nick     string `json:"-"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	require.NoError(t, v.Struct(signup{Email: "a@b.co", Username: "abc"}))

	err := v.Struct(signup{Email: "nope", Username: "ab"})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
	assert.Contains(t, verr.Fields["email"], "email")
	assert.Contains(t, verr.Fields["username"], "3 characters")
	assert.Equal(t, verr.Fields["email"]+"; "+verr.Fields["username"], verr.Error())
}
