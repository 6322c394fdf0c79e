// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MinNameLen and MaxNameLen bound the display name length in characters.
	MinNameLen = 3
	MaxNameLen = 50
	// MinPasswordLen is the minimum password length.
	MinPasswordLen = 6
	// MaxMicropostLen is the maximum micropost content length in characters.
	MaxMicropostLen = 140
)

// emailRegex accepts local@domain.tld shaped addresses. Commas, missing @ and
// trailing dots are rejected; case is ignored.
var emailRegex = regexp.MustCompile(`(?i)^[\w+\-.]+@[a-z\d\-.]+\.[a-z]+$`)

// NormalizeEmail lower-cases and trims an email address. All persistence and
// lookups go through this so that the unique index on users.email enforces
// case-insensitive uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateName checks the display name presence and length.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("name is required")
	}
	if n := utf8.RuneCountInString(trimmed); n < MinNameLen || n > MaxNameLen {
		return fmt.Errorf("name must be between %d and %d characters", MinNameLen, MaxNameLen)
	}
	return nil
}

// ValidateEmail checks email presence and format.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return fmt.Errorf("email format is invalid")
	}
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	return nil
}

// ValidatePassword checks password presence and minimum length.
func ValidatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}
	return nil
}

// ValidateRegistration runs every registration rule and collects all failures
// keyed by field name. It returns nil when the input is clean. Failures are
// never short-circuited: a caller always sees the full picture.
func ValidateRegistration(name, email, password, passwordConfirmation string) map[string][]string {
	fields := map[string][]string{}

	if err := ValidateName(name); err != nil {
		fields["name"] = append(fields["name"], err.Error())
	}
	if err := ValidateEmail(email); err != nil {
		fields["email"] = append(fields["email"], err.Error())
	}
	if err := ValidatePassword(password); err != nil {
		fields["password"] = append(fields["password"], err.Error())
	}
	if password != passwordConfirmation {
		fields["password_confirmation"] = append(fields["password_confirmation"],
			"password confirmation does not match password")
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// ValidateMicropostContent checks micropost content presence and length.
func ValidateMicropostContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is required")
	}
	if utf8.RuneCountInString(content) > MaxMicropostLen {
		return fmt.Errorf("content must not exceed %d characters", MaxMicropostLen)
	}
	return nil
}
