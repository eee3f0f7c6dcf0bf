package numbase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		input    string
		from, to int
		expected string
	}{
		{"1010", Binary, Decimal, "10"},
		{"1010", Binary, Hexadecimal, "A"},
		{"255", Decimal, Binary, "11111111"},
		{"255", Decimal, Hexadecimal, "FF"},
		{"ff", Hexadecimal, Binary, "11111111"},
		{"FF", Hexadecimal, Decimal, "255"},
		{"18446744073709551615", Decimal, Hexadecimal, "FFFFFFFFFFFFFFFF"},
		{"12", Binary, Decimal, "Invalid binary number"},
		{"12", Decimal, Decimal, "Unsupported conversion"},
		{"12", 8, Decimal, "Unsupported conversion"},
	}
	for _, tt := range tests {
		got := Convert(tt.input, tt.from, tt.to)
		assert.Equal(t, tt.expected, got.Result, "%s from %d to %d", tt.input, tt.from, tt.to)
	}
}

func TestConvertFillsEveryPair(t *testing.T) {
	r := Convert("10", Decimal, Binary)
	assert.Equal(t, "1010", r.Result)
	assert.Equal(t, "2", r.BinaryToDecimal)
	assert.Equal(t, "2", r.BinaryToHexadecimal)
	assert.Equal(t, "1010", r.DecimalToBinary)
	assert.Equal(t, "A", r.DecimalToHexadecimal)
	assert.Equal(t, "10000", r.HexadecimalToBinary)
	assert.Equal(t, "16", r.HexadecimalToDecimal)
	assert.Len(t, r.Lines(), 10)

	r = Convert("z", Decimal, Binary)
	assert.Equal(t, "Invalid decimal number", r.Result)
	assert.Equal(t, "Invalid hexadecimal number", r.HexadecimalToDecimal)
}

func TestNext(t *testing.T) {
	assert.Equal(t, Decimal, Next(Binary))
	assert.Equal(t, Hexadecimal, Next(Decimal))
	assert.Equal(t, Binary, Next(Hexadecimal))
	assert.Equal(t, Binary, Next(7))
}
