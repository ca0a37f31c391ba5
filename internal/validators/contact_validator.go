package validators

import (
	"html"
	"strings"
	"unicode/utf8"

	"portfolioBackend/internal/errs"
	"portfolioBackend/internal/models"
)

// ValidateContactRequest checks every field and collects all failures
// instead of stopping at the first one. On success the request has been
// normalized in place: fields trimmed, email lowercased, name and
// message HTML-escaped.
func ValidateContactRequest(req *models.ContactRequestBody) []error {
	var errors []error
	if req == nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return errors
	}

	req.Name = strings.TrimSpace(req.Name)
	if nameLen := utf8.RuneCountInString(req.Name); nameLen < 2 || nameLen > 100 {
		errors = append(errors, errs.ErrInvalidName)
	}

	req.Email = NormalizeEmail(req.Email)
	if !ValidateEmail(req.Email) {
		errors = append(errors, errs.ErrInvalidEmail)
	}

	req.Mobile = strings.TrimSpace(req.Mobile)
	if req.Mobile != "" && !ValidateMobile(req.Mobile) {
		errors = append(errors, errs.ErrInvalidMobile)
	}

	req.Message = strings.TrimSpace(req.Message)
	if msgLen := utf8.RuneCountInString(req.Message); msgLen < 10 || msgLen > 1000 {
		errors = append(errors, errs.ErrInvalidMessage)
	}

	if len(errors) > 0 {
		return errors
	}

	req.Name = html.EscapeString(req.Name)
	req.Message = html.EscapeString(req.Message)
	return nil
}

// ValidateMobile accepts an optional leading + followed by 7 to 15
// digits, ignoring spaces, dashes and parentheses.
func ValidateMobile(mobile string) bool {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, mobile)

	if strings.HasPrefix(cleaned, "+") {
		cleaned = cleaned[1:]
	}
	if len(cleaned) < 7 || len(cleaned) > 15 {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
