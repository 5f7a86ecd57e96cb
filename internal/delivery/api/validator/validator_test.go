package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signup{Email: "owner@acme.test", Password: "s3cret-pass"}))

	err := v.Validate(&signup{Email: "not-an-email", Password: "short"})
	require.Error(t, err)
	assert.Equal(t, "email: email, password: min=8", err.Error())
}
