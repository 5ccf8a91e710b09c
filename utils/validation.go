package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// ValidatePhone checks a phone number after stripping common punctuation.
// Accepts an optional + prefix followed by up to 15 digits.
func ValidatePhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return phonePattern.MatchString(cleaned)
}

// Field pairs a form field name with its submitted value for validation.
type Field struct {
	Name  string
	Value string
}

// RequiredFields reports the first missing field, if any. Controllers run
// this before issuing a gateway call so a half-filled form never leaves the
// process.
func RequiredFields(fields ...Field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			return fmt.Errorf("%s is required", f.Name)
		}
	}
	return nil
}
