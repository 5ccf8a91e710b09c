package utils

import (
	"fmt"
	"strings"

	"hvacpro-backend/models"
)

// FormatCurrency renders a sheet cell as en-US USD, e.g. "$1,250.50".
// Malformed values format as $0.00 under the parse-or-zero policy.
func FormatCurrency(n models.Numeric) string {
	return FormatAmount(n.Float())
}

// FormatAmount renders a float as en-US USD with thousands separators.
func FormatAmount(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	whole := fmt.Sprintf("%.2f", v)
	dot := strings.IndexByte(whole, '.')
	intPart, fracPart := whole[:dot], whole[dot+1:]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	return sign + "$" + strings.Join(groups, ",") + "." + fracPart
}

// FormatDate renders a sheet date as "Jan 2, 2006". Empty or unparseable
// input renders as the empty string.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	t := models.ParseTime(s)
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// FormatDateTime renders a sheet timestamp as "Jan 2, 2006 03:04 PM".
func FormatDateTime(s string) string {
	if s == "" {
		return ""
	}
	t := models.ParseTime(s)
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006 03:04 PM")
}
