// Package jsonutil holds the lenient JSON decoding the API needs: list
// bodies that may be empty or null, and scalars that arrive either as
// numbers or strings.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// DecodeList decodes a JSON array body. An empty body or null yields an
// empty, non-nil slice. Errors are prefixed with what.
func DecodeList[T any](body []byte, what string) ([]T, error) {
	items := []T{}
	if len(bytes.TrimSpace(body)) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	if items == nil {
		return []T{}, nil
	}
	return items, nil
}

// FlexString is text that also accepts JSON numbers and booleans, so 10 and
// "10" both decode to "10". null decodes to "". It encodes as a JSON string.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch v := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = FlexString(v)
	case json.Number:
		*s = FlexString(v.String())
	case bool:
		*s = FlexString(strconv.FormatBool(v))
	default:
		return fmt.Errorf("jsonutil: cannot decode %s into FlexString", data)
	}
	return nil
}

// String returns the plain text.
func (s FlexString) String() string {
	return string(s)
}
