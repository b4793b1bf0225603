package services

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Indent is the indentation used for archive entries.
const Indent = "  "

var errEmptyDocument = errors.New("empty document")

// Serialise renders a JSON document with two-space indentation.
//
// Key order and literal values are passed through exactly as received, so the
// output is a pure function of the input bytes. Surrounding whitespace is
// dropped and no trailing newline is added.
func Serialise(body json.RawMessage) ([]byte, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errEmptyDocument
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", Indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
