package models

import "encoding/json"

// ID is an opaque record identifier assigned by the remote store. Sheets
// return ids as numbers or strings interchangeably; both decode to the
// textual form so parent/child lookups compare consistently.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*id = ""
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*id = ID(v)
		return nil
	}
	*id = ID(s)
	return nil
}

func (id ID) String() string {
	return string(id)
}
