package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Quantity -> bilangan bulat dari JSON berupa angka (4) atau string angka ("4").
// String kosong, null, atau teks non-angka dibaca sebagai 0.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*q = 0
		return nil
	}

	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
	} else {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("quantity must be a number: %w", err)
		}
		raw = n.String()
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*q = 0
		return nil
	}
	*q = Quantity(int(f))
	return nil
}

func (q Quantity) Int() int {
	return int(q)
}
