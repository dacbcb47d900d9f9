package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2026-08-31")
	assert.True(t, ok)

	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("31-08-2026")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employee_id", Message: "employee_id is required"},
		{Field: "month", Message: "month must be between 1 and 12"},
	}

	assert.Equal(t, "employee_id: employee_id is required; month: month must be between 1 and 12", errs.Error())
	assert.Equal(t, map[string]string{
		"employee_id": "employee_id is required",
		"month":       "month must be between 1 and 12",
	}, errs.ToMap())
}
