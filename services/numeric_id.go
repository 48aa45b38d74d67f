package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// NumericID accepts an unsigned id sent either as a JSON number or as a
// numeric string, since form-driven clients post select values as strings.
type NumericID uint

func (n *NumericID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}

	v, err := strconv.ParseUint(string(data), 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", data, err)
	}
	*n = NumericID(v)
	return nil
}
