// Package numbase converts unsigned 64 bit integers between binary, decimal
// and hexadecimal.
package numbase

import (
	"fmt"
	"strconv"
	"strings"
)

// Supported bases.
const (
	Binary      = 2
	Decimal     = 10
	Hexadecimal = 16
)

// Bases lists the supported bases in cycling order.
var Bases = []int{Binary, Decimal, Hexadecimal}

// Result holds the requested conversion plus every pairwise conversion of the
// same input.
type Result struct {
	Input string
	From  int
	To    int

	Result               string
	BinaryToDecimal      string
	BinaryToHexadecimal  string
	DecimalToBinary      string
	DecimalToHexadecimal string
	HexadecimalToBinary  string
	HexadecimalToDecimal string
}

// Convert converts input from base from to base to, and fills in every
// pairwise conversion regardless of the requested pair. Invalid input is
// reported in the result fields rather than as an error, so a partial match
// (valid decimal, invalid binary) still renders.
func Convert(input string, from, to int) Result {
	input = strings.TrimSpace(input)
	r := Result{
		Input:                input,
		From:                 from,
		To:                   to,
		BinaryToDecimal:      convert(input, Binary, Decimal),
		BinaryToHexadecimal:  convert(input, Binary, Hexadecimal),
		DecimalToBinary:      convert(input, Decimal, Binary),
		DecimalToHexadecimal: convert(input, Decimal, Hexadecimal),
		HexadecimalToBinary:  convert(input, Hexadecimal, Binary),
		HexadecimalToDecimal: convert(input, Hexadecimal, Decimal),
	}
	if from == to || !supported(from) || !supported(to) {
		r.Result = "Unsupported conversion"
	} else {
		r.Result = convert(input, from, to)
	}
	return r
}

// Next returns the base following b in Bases.
func Next(b int) int {
	for i, base := range Bases {
		if base == b {
			return Bases[(i+1)%len(Bases)]
		}
	}
	return Bases[0]
}

// Name returns the display name of base b.
func Name(b int) string {
	switch b {
	case Binary:
		return "binary"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	}
	return fmt.Sprintf("base %d", b)
}

// Lines returns the result as labelled lines.
func (r Result) Lines() []string {
	return []string{
		"Input: " + r.Input,
		"From Base: " + strconv.Itoa(r.From),
		"To Base: " + strconv.Itoa(r.To),
		"Result: " + r.Result,
		"Binary to Decimal: " + r.BinaryToDecimal,
		"Binary to Hexadecimal: " + r.BinaryToHexadecimal,
		"Decimal to Binary: " + r.DecimalToBinary,
		"Decimal to Hexadecimal: " + r.DecimalToHexadecimal,
		"Hexadecimal to Binary: " + r.HexadecimalToBinary,
		"Hexadecimal to Decimal: " + r.HexadecimalToDecimal,
	}
}

func supported(b int) bool {
	return b == Binary || b == Decimal || b == Hexadecimal
}

func convert(input string, from, to int) string {
	n, err := strconv.ParseUint(input, from, 64)
	if err != nil {
		return fmt.Sprintf("Invalid %s number", Name(from))
	}
	return strings.ToUpper(strconv.FormatUint(n, to))
}
