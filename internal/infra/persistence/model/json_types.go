package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// StringSlice stores a []string as a JSONB column.
type StringSlice []string

// Value implements driver.Valuer.
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}

	raw, err := json.Marshal([]string(s))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal string slice")
	}

	return raw, nil
}

// Scan implements sql.Scanner.
func (s *StringSlice) Scan(src any) error {
	if src == nil {
		*s = nil

		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("unsupported type %T for string slice", src)
	}

	return errors.Wrap(json.Unmarshal(raw, (*[]string)(s)), "failed to unmarshal string slice")
}
