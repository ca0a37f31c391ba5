package validators

import (
	"regexp"
	"strings"

	"portfolioBackend/internal/errs"
	"portfolioBackend/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func ValidateLoginRequest(req *models.LoginRequestBody) []error {
	var errors []error
	if req == nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return errors
	}

	req.Email = NormalizeEmail(req.Email)
	if !ValidateEmail(req.Email) {
		errors = append(errors, errs.ErrInvalidEmail)
	}

	if len(req.Password) < 1 {
		errors = append(errors, errs.ErrEmptyPassword)
	}
	return errors
}

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
