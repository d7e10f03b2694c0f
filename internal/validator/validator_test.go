package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type opportunityPayload struct {
	Title           string `json:"title" validate:"required,max=200"`
	Category        string `json:"category" validate:"required,is-category"`
	OpportunityType string `json:"opportunityType" validate:"omitempty,is-opportunity-type"`
	ExperienceLevel string `json:"experienceLevel" validate:"omitempty,is-experience-level"`
	PaymentType     string `json:"paymentType" validate:"omitempty,is-payment-type"`
	Website         string `form:"website" validate:"omitempty,url"`
}

type signupPayload struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,is-signup-role"`
}

func TestValidate_OK(t *testing.T) {
	v := New()
	err := v.Validate(&opportunityPayload{
		Title:           "Go developer",
		Category:        "TECH",
		OpportunityType: "JOB",
		ExperienceLevel: "SENIOR",
		PaymentType:     "PAID",
	})
	assert.NoError(t, err)
}

func TestValidate_UsesJSONAndFormNames(t *testing.T) {
	v := New()
	err := v.Validate(&opportunityPayload{
		Category:    "SPORTS",
		PaymentType: "BARTER",
		Website:     "not a url",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "This field is required", vErr.Errors["title"])
	assert.Contains(t, vErr.Errors["category"], "TECH")
	assert.Contains(t, vErr.Errors["paymentType"], "STIPEND")
	assert.Equal(t, "Must be a valid URL", vErr.Errors["website"])
	assert.NotContains(t, vErr.Errors, "opportunityType")
}

func TestValidate_SignupRoleExcludesAdmin(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&signupPayload{Email: "a@b.co", Role: "ORGANIZATION"}))

	err := v.Validate(&signupPayload{Email: "a@b.co", Role: "SUPER_ADMIN"})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Equal(t, "Must be one of: USER, ORGANIZATION", vErr.Errors["role"])
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Errors: map[string]string{"email": "Must be a valid email address"}}
	assert.Contains(t, err.Error(), "field 'email'")
}
