package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Identifier menerima id user dalam bentuk angka (12) atau string ("12" / "alice").
type Identifier string

func (id *Identifier) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = Identifier(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = Identifier(n.String())
	return nil
}

func (id Identifier) String() string {
	return string(id)
}

func (id Identifier) Empty() bool {
	return strings.TrimSpace(string(id)) == ""
}
