// Package qrgen encodes text into QR codes for display in a terminal or
// export as PNG.
package qrgen

import (
	"errors"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	// PNGSize is the edge length in pixels of exported images.
	PNGSize = 256

	filenameChars = 10
)

var (
	// ErrEmptyInput is returned when there is nothing to encode.
	ErrEmptyInput = errors.New("nothing to encode, enter some data first")
	// ErrNotGenerated is returned when exporting before a code was generated.
	ErrNotGenerated = errors.New("QR code has not been generated yet")
)

// Code is an encoded QR code and the text it was generated from.
type Code struct {
	Input string
	qr    *qrcode.QRCode
}

// Generate encodes input with medium error correction.
func Generate(input string) (*Code, error) {
	if input == "" {
		return nil, ErrEmptyInput
	}
	qr, err := qrcode.New(input, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	qr.DisableBorder = true
	return &Code{Input: input, qr: qr}, nil
}

// String renders the code with half block characters, two modules per line.
func (c *Code) String() string {
	return c.qr.ToSmallString(false)
}

// PNG renders the code as a PNG image.
func (c *Code) PNG() ([]byte, error) {
	if c == nil || c.qr == nil {
		return nil, ErrNotGenerated
	}
	return c.qr.PNG(PNGSize)
}

// Filename derives an export file name from the first characters of the
// input, lowercased, with spaces replaced by underscores.
func (c *Code) Filename() string {
	name := []rune(c.Input)
	if len(name) > filenameChars {
		name = name[:filenameChars]
	}
	base := strings.ToLower(strings.ReplaceAll(string(name), " ", "_"))
	base = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == 0 {
			return '_'
		}
		return r
	}, base)
	return base + ".png"
}
