package accounts

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// ValidationError reports which field violated which rule.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

var usernameRegexp = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)

// ValidateUser is the default validation policy: the three checks below, the
// first violation wins.
func ValidateUser(username, email, password string) error {

	err := ValidateUsername(username)
	if err != nil {
		return err
	}

	err = ValidateEmail(email)
	if err != nil {
		return err
	}

	return ValidatePassword(password)
}

func ValidateUsername(username string) error {
	if !usernameRegexp.MatchString(username) {
		return &ValidationError{
			Field:  "username",
			Reason: "must be 3 to 30 characters, letters, digits and underscore only",
		}
	}
	return nil
}

// ValidateEmail is intentionally loose: a single '@', at least one '.' after
// it, no whitespace. Not an RFC validator.
func ValidateEmail(email string) error {

	if strings.ContainsAny(email, " \t\r\n") {
		return &ValidationError{
			Field:  "email",
			Reason: "must not contain whitespace",
		}
	}

	at := strings.Index(email, "@")
	if at == -1 || strings.Count(email, "@") != 1 {
		return &ValidationError{
			Field:  "email",
			Reason: "must contain a single '@'",
		}
	}

	if !strings.Contains(email[at:], ".") {
		return &ValidationError{
			Field:  "email",
			Reason: "must contain a '.' after the '@'",
		}
	}

	return nil
}

func ValidatePassword(password string) error {

	if len(password) < 8 {
		return &ValidationError{
			Field:  "password",
			Reason: "must be at least 8 characters",
		}
	}

	var digit, lower, upper, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		default:
			symbol = true
		}
	}

	if !digit {
		return &ValidationError{Field: "password", Reason: "must contain at least one digit"}
	}
	if !lower {
		return &ValidationError{Field: "password", Reason: "must contain at least one lowercase letter"}
	}
	if !upper {
		return &ValidationError{Field: "password", Reason: "must contain at least one uppercase letter"}
	}
	if !symbol {
		return &ValidationError{Field: "password", Reason: "must contain at least one symbol"}
	}

	return nil
}
