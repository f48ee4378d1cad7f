package httperr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBusiness_Wrapped(t *testing.T) {
	err := fmt.Errorf("create: %w", ErrBusiness("time_conflict"))

	assert.True(t, IsBusiness(err, "time_conflict"))
	assert.False(t, IsBusiness(err, "invalid_state"))
}

func TestValidationErrors_ErrNilWhenEmpty(t *testing.T) {
	var v ValidationErrors
	assert.NoError(t, v.Err())

	v.Add("email", "invalid_email", "Enter a valid email address.")
	require.Error(t, v.Err())

	fields, ok := Fields(fmt.Errorf("wrap: %w", v.Err()))
	require.True(t, ok)
	assert.Equal(t, "email", fields[0].Field)
}

func TestFields_SingleFieldError(t *testing.T) {
	fields, ok := Fields(Field("date", "date_in_past", "Pick today or a later date."))
	require.True(t, ok)
	require.Len(t, fields, 1)
	assert.Equal(t, "date_in_past", fields[0].Code)

	_, ok = Fields(ErrBusiness("x"))
	assert.False(t, ok)
}
