package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolioBackend/internal/errs"
	"portfolioBackend/internal/models"
)

func TestValidateLoginRequest(t *testing.T) {
	tests := []struct {
		name     string
		req      models.LoginRequestBody
		wantErrs []error
	}{
		{
			name: "valid",
			req:  models.LoginRequestBody{Email: "admin@example.com", Password: "secret"},
		},
		{
			name:     "bad email",
			req:      models.LoginRequestBody{Email: "nope", Password: "secret"},
			wantErrs: []error{errs.ErrInvalidEmail},
		},
		{
			name:     "empty password",
			req:      models.LoginRequestBody{Email: "admin@example.com"},
			wantErrs: []error{errs.ErrEmptyPassword},
		},
		{
			name:     "both invalid",
			req:      models.LoginRequestBody{},
			wantErrs: []error{errs.ErrInvalidEmail, errs.ErrEmptyPassword},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			errors := ValidateLoginRequest(&req)
			assert.Equal(t, tt.wantErrs, errors)
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "admin@example.com", NormalizeEmail("  Admin@Example.COM "))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("jane.doe+tag@sub.example.co"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail(""))
}
