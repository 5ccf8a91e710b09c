package utils

import (
	"encoding/json"
	"testing"

	"hvacpro-backend/models"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{1250.5, "$1,250.50"},
		{1234567.891, "$1,234,567.89"},
		{-2000, "-$2,000.00"},
	}

	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCurrency_MalformedIsZero(t *testing.T) {
	var n models.Numeric
	if err := json.Unmarshal([]byte(`"not money"`), &n); err != nil {
		t.Fatal(err)
	}
	if got := FormatCurrency(n); got != "$0.00" {
		t.Errorf("FormatCurrency = %q, want $0.00", got)
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-01-05", "Jan 5, 2025"},
		{"2025-12-31T08:30:00Z", "Dec 31, 2025"},
		{"", ""},
		{"garbage", ""},
	}

	for _, tc := range cases {
		if got := FormatDate(tc.in); got != tc.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	if got := FormatDateTime("2025-01-05T14:30:00Z"); got != "Jan 5, 2025 02:30 PM" {
		t.Errorf("FormatDateTime = %q", got)
	}
	if got := FormatDateTime(""); got != "" {
		t.Errorf("FormatDateTime(empty) = %q, want empty", got)
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"+14084253800", "4084253800", "(408) 425-3800"}
	for _, p := range valid {
		if !ValidatePhone(p) {
			t.Errorf("ValidatePhone(%q) = false, want true", p)
		}
	}

	invalid := []string{"", "abc", "0123", "+"}
	for _, p := range invalid {
		if ValidatePhone(p) {
			t.Errorf("ValidatePhone(%q) = true, want false", p)
		}
	}
}

func TestRequiredFields(t *testing.T) {
	err := RequiredFields(
		Field{Name: "firstName", Value: "Maria"},
		Field{Name: "lastName", Value: "  "},
	)
	if err == nil || err.Error() != "lastName is required" {
		t.Errorf("RequiredFields error = %v, want lastName is required", err)
	}

	if err := RequiredFields(Field{Name: "firstName", Value: "Maria"}); err != nil {
		t.Errorf("RequiredFields error = %v, want nil", err)
	}
}
