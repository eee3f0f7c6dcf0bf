// Package b64 encodes and decodes standard base64.
package b64

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrInvalidInput is returned from Decode when the input is not valid base64.
var ErrInvalidInput = errors.New("provided input is not a valid base64 string")

// Encode returns the standard base64 encoding of s.
func Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Decode decodes standard base64. Invalid UTF-8 in the decoded bytes is
// replaced rather than rejected.
func Decode(s string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", ErrInvalidInput
	}
	return strings.ToValidUTF8(string(decoded), "\uFFFD"), nil
}
