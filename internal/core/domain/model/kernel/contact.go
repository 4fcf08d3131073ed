package kernel

import (
	"regexp"
	"strings"

	"marketplace/internal/pkg/errs"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	// E.164 format, e.g. +966512345678.
	phonePattern = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
)

const maxEmailLength = 254

// Email is a validated, normalized (lowercase) email address value object.
type Email struct {
	value string
}

// NewEmail validates and normalizes an email address.
func NewEmail(value string) (Email, error) {
	if strings.TrimSpace(value) == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	normalized := strings.ToLower(strings.TrimSpace(value))
	if len(normalized) > maxEmailLength {
		return Email{}, errs.NewValueIsOutOfRangeError("email length", len(normalized), 1, maxEmailLength)
	}
	if !emailPattern.MatchString(normalized) {
		return Email{}, errs.NewValueIsInvalidError("email")
	}

	return Email{value: normalized}, nil
}

// String returns the normalized address.
func (e Email) String() string {
	return e.value
}

// IsEqual compares two addresses by value.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

// PhoneNumber is a validated phone number value object normalized to E.164.
// Numbers without a country prefix are assumed to be Saudi (+966), matching
// the marketplace's home region.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber validates and normalizes a phone number to E.164.
// Spaces, dashes, and parentheses are stripped before validation.
func NewPhoneNumber(value string) (PhoneNumber, error) {
	if strings.TrimSpace(value) == "" {
		return PhoneNumber{}, errs.NewValueIsRequiredError("phone number")
	}

	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(value)

	if !strings.HasPrefix(cleaned, "+") {
		switch {
		case strings.HasPrefix(cleaned, "966"):
			cleaned = "+" + cleaned
		case strings.HasPrefix(cleaned, "0"):
			cleaned = "+966" + cleaned[1:]
		default:
			cleaned = "+966" + cleaned
		}
	}

	if !phonePattern.MatchString(cleaned) {
		return PhoneNumber{}, errs.NewValueIsInvalidError("phone number")
	}

	return PhoneNumber{value: cleaned}, nil
}

// String returns the E.164 representation.
func (p PhoneNumber) String() string {
	return p.value
}

// IsEqual compares two phone numbers by value.
func (p PhoneNumber) IsEqual(other PhoneNumber) bool {
	return p.value == other.value
}
