// Package colorconv converts colors between hex, RGB, CMYK and HSL notation.
package colorconv

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when the input matches none of the supported
// notations.
var ErrInvalidColor = errors.New("Invalid color format")

// Color is an 8 bit per channel RGB color.
type Color struct {
	R, G, B uint8
}

// Result holds every rendering of a parsed color.
type Result struct {
	CMYK string
	RGB  string
	Hex  string
	HSL  string
}

// Convert parses input and renders it in every supported notation.
func Convert(input string) (Result, error) {
	c, err := Parse(input)
	if err != nil {
		return Result{}, err
	}
	return Result{
		CMYK: c.CMYK(),
		RGB:  c.RGB(),
		Hex:  c.Hex(),
		HSL:  c.HSL(),
	}, nil
}

// Parse accepts "#RRGGBB", "r, g, b", "c%, m%, y%, k%" or "h°, s%, l%",
// tried in that order.
func Parse(input string) (Color, error) {
	input = strings.TrimSpace(input)
	for _, parse := range []func(string) (Color, bool){parseHex, parseRGB, parseCMYK, parseHSL} {
		if c, ok := parse(input); ok {
			return c, nil
		}
	}
	return Color{}, ErrInvalidColor
}

func (c Color) RGB() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) CMYK() string {
	r, g, b := c.unit()
	k := 1 - math.Max(r, math.Max(g, b))
	var cy, m, y float64
	if k < 1 {
		cy = (1 - r - k) / (1 - k)
		m = (1 - g - k) / (1 - k)
		y = (1 - b - k) / (1 - k)
	}
	return fmt.Sprintf("%.0f%%, %.0f%%, %.0f%%, %.0f%%", cy*100, m*100, y*100, k*100)
}

func (c Color) HSL() string {
	r, g, b := c.unit()
	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	diff := hi - lo

	var h float64
	switch {
	case hi == lo:
		h = 0
	case hi == r:
		h = math.Mod(60*((g-b)/diff)+360, 360)
	case hi == g:
		h = 60*((b-r)/diff) + 120
	default:
		h = 60*((r-g)/diff) + 240
	}

	l := (hi + lo) / 2
	var s float64
	switch {
	case l == 0 || hi == lo:
		s = 0
	case l <= 0.5:
		s = diff / (hi + lo)
	default:
		s = diff / (2 - hi - lo)
	}
	return fmt.Sprintf("%.0f°, %.0f%%, %.0f%%", h, s*100, l*100)
}

func (c Color) unit() (float64, float64, float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

func parseHex(input string) (Color, bool) {
	input = strings.TrimPrefix(input, "#")
	if len(input) != 6 {
		return Color{}, false
	}
	v, err := strconv.ParseUint(input, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

func parseRGB(input string) (Color, bool) {
	parts := strings.Split(input, ",")
	if len(parts) != 3 {
		return Color{}, false
	}
	var channels [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Color{}, false
		}
		channels[i] = uint8(v)
	}
	return Color{R: channels[0], G: channels[1], B: channels[2]}, true
}

func parseCMYK(input string) (Color, bool) {
	parts := strings.Split(input, ",")
	if len(parts) != 4 {
		return Color{}, false
	}
	var v [4]float64
	for i, p := range parts {
		f, err := parseFloat(p, "%")
		if err != nil {
			return Color{}, false
		}
		v[i] = f / 100
	}
	c, m, y, k := v[0], v[1], v[2], v[3]
	return Color{
		R: channel((1 - c) * (1 - k)),
		G: channel((1 - m) * (1 - k)),
		B: channel((1 - y) * (1 - k)),
	}, true
}

func parseHSL(input string) (Color, bool) {
	parts := strings.Split(input, ",")
	if len(parts) != 3 {
		return Color{}, false
	}
	h, err := parseFloat(parts[0], "°")
	if err != nil {
		return Color{}, false
	}
	s, err := parseFloat(parts[1], "%")
	if err != nil {
		return Color{}, false
	}
	l, err := parseFloat(parts[2], "%")
	if err != nil {
		return Color{}, false
	}
	s, l = s/100, l/100

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return Color{R: channel(r + m), G: channel(g + m), B: channel(b + m)}, true
}

func parseFloat(s, suffix string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), suffix), 64)
}

// channel scales a [0, 1] component to [0, 255], truncating and clamping.
func channel(f float64) uint8 {
	v := f * 255
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
