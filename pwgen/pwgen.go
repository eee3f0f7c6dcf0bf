// Package pwgen generates random passwords that satisfy a set of
// independently toggleable constraints: character classes, no repeated
// characters, no sequential neighbours and no visually similar glyphs.
//
// Generation is rejection sampling with a bounded number of draws per
// position, so an unsatisfiable combination of settings fails with an error
// instead of spinning forever.
package pwgen

import (
	"errors"
	"fmt"
)

const (
	// MaxAttempts is the number of candidates drawn for a single position
	// before generation gives up.
	MaxAttempts = 500

	// MaxLength is the longest password Generate will build.
	MaxLength = 4096

	// MaxQuantity is the largest batch GenerateBatch will build.
	MaxQuantity = 1000
)

var (
	// ErrEmptyAlphabet is returned when no character class is enabled, or when
	// similar character exclusion leaves nothing to draw from.
	ErrEmptyAlphabet = errors.New("no characters available: enable at least one character class")

	// ErrUnsatisfiable is returned when the active constraints cannot be met
	// for some position within MaxAttempts draws.
	ErrUnsatisfiable = errors.New("password constraints cannot be satisfied with the current settings")
)

// BatchAbortedError is returned from GenerateBatch when one of the passwords
// in the batch could not be generated. Results generated before the failure
// are discarded.
type BatchAbortedError struct {
	Index int
	Err   error
}

func (e *BatchAbortedError) Error() string {
	return fmt.Sprintf("batch aborted at password %d: %v", e.Index+1, e.Err)
}

func (e *BatchAbortedError) Unwrap() error {
	return e.Err
}

// Generate creates a single password of exactly s.Length characters drawn
// from Alphabet(s) using src.
func Generate(s Settings, src Source) (string, error) {
	alphabet, err := prepare(s)
	if err != nil {
		return "", err
	}
	return generate(s, src, alphabet)
}

// prepare validates the length and builds the alphabet before anything is
// allocated from s.
func prepare(s Settings) ([]rune, error) {
	if s.Length < 1 {
		return nil, fmt.Errorf("length must be at least 1, got %d", s.Length)
	}
	if s.Length > MaxLength {
		return nil, fmt.Errorf("%w: length %d exceeds the maximum of %d", ErrUnsatisfiable, s.Length, MaxLength)
	}
	alphabet, err := Alphabet(s)
	if err != nil {
		return nil, err
	}
	if !s.AllowDuplicates && s.Length > len(alphabet) {
		return nil, fmt.Errorf("%w: %d unique characters requested from an alphabet of %d", ErrUnsatisfiable, s.Length, len(alphabet))
	}
	return alphabet, nil
}

func generate(s Settings, src Source, alphabet []rune) (string, error) {
	built := make([]rune, 0, s.Length)
	for pos := 0; pos < s.Length; pos++ {
		c, err := sample(s, src, alphabet, built)
		if err != nil {
			if errors.Is(err, ErrUnsatisfiable) {
				return "", fmt.Errorf("%w: no valid character for position %d after %d attempts", ErrUnsatisfiable, pos+1, MaxAttempts)
			}
			return "", err
		}
		built = append(built, c)
	}
	return string(built), nil
}

// sample draws candidates for the next position until one is accepted.
func sample(s Settings, src Source, alphabet, built []rune) (rune, error) {
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		idx, err := src.Intn(len(alphabet))
		if err != nil {
			return 0, err
		}
		if c := alphabet[idx]; Accept(s, built, c) {
			return c, nil
		}
	}
	return 0, ErrUnsatisfiable
}

// GenerateBatch generates s.Quantity passwords. Constraints apply within each
// password, never across the batch. The batch is all or nothing: the first
// failure is returned as a *BatchAbortedError.
func GenerateBatch(s Settings, src Source) ([]string, error) {
	quantity := max(s.Quantity, 1)
	alphabet, err := prepare(s)
	if err != nil {
		return nil, &BatchAbortedError{Index: 0, Err: err}
	}
	if quantity > MaxQuantity {
		return nil, &BatchAbortedError{
			Index: 0,
			Err:   fmt.Errorf("%w: quantity %d exceeds the maximum of %d", ErrUnsatisfiable, quantity, MaxQuantity),
		}
	}

	passwords := make([]string, 0, quantity)
	for i := 0; i < quantity; i++ {
		pw, err := generate(s, src, alphabet)
		if err != nil {
			return nil, &BatchAbortedError{Index: i, Err: err}
		}
		passwords = append(passwords, pw)
	}
	return passwords, nil
}
