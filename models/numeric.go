package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Numeric is a spreadsheet cell value that is usually a number but may arrive
// as a quoted string, blank, or junk. The raw value round-trips through
// marshal/unmarshal unchanged; Float applies the parse-or-zero policy.
type Numeric struct {
	raw    string
	quoted bool
}

// Num builds a Numeric from its string form, e.g. Num("1250.50").
func Num(s string) Numeric {
	return Numeric{raw: s, quoted: true}
}

func (n *Numeric) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*n = Numeric{quoted: true}
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*n = Numeric{raw: v, quoted: true}
		return nil
	}
	*n = Numeric{raw: s}
	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	if n.quoted || n.raw == "" {
		return json.Marshal(n.raw)
	}
	return []byte(n.raw), nil
}

// Float parses the cell as a finite decimal, returning 0 for anything else.
// Aggregates must never fail on malformed input.
func (n Numeric) Float() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(n.raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func (n Numeric) String() string {
	return n.raw
}

// IsZero reports whether the cell is blank.
func (n Numeric) IsZero() bool {
	return n.raw == ""
}
