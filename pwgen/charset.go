package pwgen

import (
	"strings"
)

const (
	// CharsetUpper defines the uppercase character class.
	CharsetUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// CharsetLower defines the lowercase character class.
	CharsetLower = "abcdefghijklmnopqrstuvwxyz"
	// CharsetNumbers defines the digit character class.
	CharsetNumbers = "0123456789"
	// CharsetSymbols defines the symbol character class.
	CharsetSymbols = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// SimilarChars are glyphs that are easy to confuse with one another. They
	// are removed from the alphabet when ExcludeSimilar is set.
	SimilarChars = "iIlLoO01"
)

// Alphabet assembles the candidate characters for s, in the fixed order
// uppercase, lowercase, numbers, symbols. Similar characters are removed once,
// after the classes are combined.
func Alphabet(s Settings) ([]rune, error) {
	var b strings.Builder
	if s.Uppercase {
		b.WriteString(CharsetUpper)
	}
	if s.Lowercase {
		b.WriteString(CharsetLower)
	}
	if s.Numbers {
		b.WriteString(CharsetNumbers)
	}
	if s.Symbols {
		b.WriteString(CharsetSymbols)
	}

	alphabet := make([]rune, 0, b.Len())
	for _, c := range b.String() {
		if s.ExcludeSimilar && isSimilar(c) {
			continue
		}
		alphabet = append(alphabet, c)
	}
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	return alphabet, nil
}

func isSimilar(c rune) bool {
	return strings.ContainsRune(SimilarChars, c)
}
