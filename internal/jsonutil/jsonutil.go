// Package jsonutil holds the small JSON helpers shared by the catalog loader and the CLI.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// UnmarshalWithContext decodes a single JSON value from data into v and wraps
// any error with the provided context message. Object keys that match no
// struct field are errors.
func UnmarshalWithContext(data []byte, v any, context string) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: unexpected data after top-level value", context)
	}
	return nil
}

// UnmarshalObject decodes a JSON object into a map, rejecting any other top-level shape.
func UnmarshalObject[T any](data []byte, context string) (map[string]T, error) {
	var out map[string]T
	if err := UnmarshalWithContext(data, &out, context); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("%s: expected an object", context)
	}
	return out, nil
}

// Encode writes v to w as indented JSON followed by a newline.
func Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
