package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type presence bool

func (p presence) Present() bool { return bool(p) }

func TestValidateStruct(t *testing.T) {
	type candidate struct {
		Title  string   `validate:"required"`
		Rating presence `validate:"present"`
	}

	assert.Empty(t, ValidateStruct(candidate{Title: "Chess", Rating: true}))

	errs := ValidateStruct(candidate{})
	assert.Equal(t, map[string]string{
		"Title":  "This field is required",
		"Rating": "This field is required",
	}, errs)
	assert.Equal(t, "Rating: This field is required; Title: This field is required", FormatValidationErrors(errs))
}
