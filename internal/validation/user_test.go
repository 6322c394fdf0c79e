package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "Example User", false},
		{"minimum length", "abc", false},
		{"maximum length", strings.Repeat("a", 50), false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", 51), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"user@foo.com", "USER@foo.org", "first.last@foo.jp", "a+b@baz.cn"}
	for _, addr := range valid {
		t.Run(addr, func(t *testing.T) {
			assert.NoError(t, ValidateEmail(addr))
		})
	}

	invalid := []string{"", " ", "user@foo,com", "user_at_foo.org", "user@foo.", "example.user@foo"}
	for _, addr := range invalid {
		t.Run("invalid_"+addr, func(t *testing.T) {
			assert.Error(t, ValidateEmail(addr))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("foobar"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("      "))
	assert.Error(t, ValidatePassword("aaaaa"), "five characters is below the minimum")
	assert.Error(t, ValidatePassword(strings.Repeat("a", 129)))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("USER@Example.COM"))
	assert.Equal(t, "user@example.com", NormalizeEmail("  user@example.com "))
}

func TestValidateRegistrationCollectsAllFailures(t *testing.T) {
	fields := ValidateRegistration("ab", "not-an-email", "short", "mismatch")

	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "password_confirmation")
}

func TestValidateRegistrationCleanInput(t *testing.T) {
	fields := ValidateRegistration("Example User", "user@example.com", "foobar", "foobar")
	assert.Nil(t, fields)
}

func TestValidateMicropostContent(t *testing.T) {
	assert.NoError(t, ValidateMicropostContent("Lorem ipsum"))
	assert.NoError(t, ValidateMicropostContent(strings.Repeat("a", 140)))
	assert.Error(t, ValidateMicropostContent(""))
	assert.Error(t, ValidateMicropostContent("   "))
	assert.Error(t, ValidateMicropostContent(strings.Repeat("a", 141)))
}
