package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signup{Email: "ann@example.com", Password: "Sup3r$ecret"}))

	err := v.Validate(&signup{Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, map[string]string{"email": "email", "password": "min=8"}, fields)
}

func TestFieldErrors_ForeignError(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("boom")))
}
