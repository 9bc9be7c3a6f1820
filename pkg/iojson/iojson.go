// Package iojson writes machine-readable command output.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Error is the JSON shape written for command failures.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// fallbackError builds an error document by hand when marshaling fails.
func fallbackError(msg string, cause error) string {
	m, _ := json.Marshal(msg)
	c, _ := json.Marshal(cause.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, m, c)
}

// MarshalError renders msg and data as an indented Error document.
func MarshalError(msg string, data map[string]any) string {
	bits, err := json.MarshalIndent(Error{Message: msg, Data: data}, "", "  ")
	if err != nil {
		return fallbackError(msg, err)
	}
	return string(bits)
}

// WriteError writes an Error document to stderr.
func WriteError(msg string, data map[string]any) error {
	_, err := fmt.Fprintln(os.Stderr, MarshalError(msg, data))
	return err
}

// WriteWith writes obj as indented JSON to w. Marshal failures are reported
// to ew as an Error document.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, werr := fmt.Fprintln(ew, fallbackError("marshal output", err))
		return werr
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
