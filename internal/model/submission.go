package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Submission maps a form field id to its raw value. A missing key means the
// field was not submitted.
type Submission map[string]string

// Get returns the raw value for id, or "" when it is absent.
func (s Submission) Get(id string) string {
	if s == nil {
		return ""
	}
	return s[id]
}

// Lookup returns the trimmed value and whether it is non-blank.
func (s Submission) Lookup(id string) (string, bool) {
	value := strings.TrimSpace(s.Get(id))
	return value, value != ""
}

// UnmarshalJSON accepts any JSON scalar per field. Numbers keep their
// literal text, booleans become "true"/"false", and null drops the key.
func (s *Submission) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	result := make(Submission, len(raw))
	for key, value := range raw {
		value = bytes.TrimSpace(value)
		if len(value) == 0 || bytes.Equal(value, []byte("null")) {
			continue
		}
		switch value[0] {
		case '"':
			var str string
			if err := json.Unmarshal(value, &str); err != nil {
				return fmt.Errorf("field %q: %w", key, err)
			}
			result[key] = str
		case '{', '[':
			return fmt.Errorf("field %q: expected a scalar value", key)
		default:
			result[key] = string(value)
		}
	}
	*s = result
	return nil
}
