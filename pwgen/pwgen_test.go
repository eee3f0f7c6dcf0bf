package pwgen

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

// fixedSource always returns the same index.
type fixedSource struct {
	idx   int
	calls int
}

func (f *fixedSource) Intn(n int) (int, error) {
	f.calls++
	return f.idx % n, nil
}

type failingSource struct{ err error }

func (f failingSource) Intn(int) (int, error) { return 0, f.err }

func checkPassword(t *testing.T, s Settings, pw string) {
	t.Helper()
	runes := []rune(pw)
	if len(runes) != s.Length {
		t.Fatalf("password %q has length %v, wanted %v", pw, len(runes), s.Length)
	}

	alphabet, err := Alphabet(s)
	if err != nil {
		t.Fatal(err)
	}
	allowed := string(alphabet)

	seen := make(map[rune]bool)
	for i, c := range runes {
		if !strings.ContainsRune(allowed, c) {
			t.Fatalf("password %q contains %q outside the alphabet", pw, c)
		}
		if s.ExcludeSimilar && strings.ContainsRune(SimilarChars, c) {
			t.Fatalf("password %q contains similar character %q", pw, c)
		}
		if !s.AllowDuplicates && seen[c] {
			t.Fatalf("password %q repeats %q", pw, c)
		}
		seen[c] = true
		if !s.AllowSequential && i > 0 {
			if diff := c - runes[i-1]; diff == 1 || diff == -1 {
				t.Fatalf("password %q has sequential pair %q%q", pw, runes[i-1], c)
			}
		}
	}
}

func TestGenerateProperties(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"defaults", func(s *Settings) {}},
		{"exclude similar", func(s *Settings) { s.ExcludeSimilar = true }},
		{"allow duplicates", func(s *Settings) { s.AllowDuplicates = true; s.Length = 40 }},
		{"allow sequential", func(s *Settings) { s.AllowSequential = true }},
		{"lowercase only", func(s *Settings) {
			s.Uppercase, s.Numbers, s.Symbols = false, false, false
			s.Length = 8
		}},
		{"symbols only", func(s *Settings) {
			s.Uppercase, s.Lowercase, s.Numbers = false, false, false
			s.Length = 6
		}},
		{"length one", func(s *Settings) { s.Length = 1 }},
	}
	src := CryptoSource()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)
			for i := 0; i < 200; i++ {
				pw, err := Generate(s, src)
				if err != nil {
					t.Fatal(err)
				}
				checkPassword(t, s, pw)
			}
		})
	}
}

func TestGenerateLettersWithoutSimilar(t *testing.T) {
	s := Settings{
		Length:         8,
		Quantity:       1,
		Uppercase:      true,
		Lowercase:      true,
		ExcludeSimilar: true,
	}
	src := CryptoSource()
	for i := 0; i < 500; i++ {
		pw, err := Generate(s, src)
		if err != nil {
			t.Fatal(err)
		}
		checkPassword(t, s, pw)
		if strings.ContainsAny(pw, "ilLoO") {
			t.Fatalf("password %q contains a similar letter", pw)
		}
		for _, c := range pw {
			if !(c >= 'A' && c <= 'Z') && !(c >= 'a' && c <= 'z') {
				t.Fatalf("unexpected character %q in %q", c, pw)
			}
		}
	}
}

func TestGenerateEmptyAlphabet(t *testing.T) {
	s := DefaultSettings()
	s.Uppercase, s.Lowercase, s.Numbers, s.Symbols = false, false, false, false

	pw, err := Generate(s, CryptoSource())
	if !errors.Is(err, ErrEmptyAlphabet) {
		t.Fatal("expected ErrEmptyAlphabet, got", err)
	}
	if pw != "" {
		t.Fatalf("expected no password, got %q", pw)
	}
}

func TestGenerateTooLongForUniqueDigits(t *testing.T) {
	s := Settings{Length: 20, Quantity: 1, Numbers: true}

	pw, err := Generate(s, CryptoSource())
	if !errors.Is(err, ErrUnsatisfiable) {
		t.Fatal("expected ErrUnsatisfiable, got", err)
	}
	if pw != "" {
		t.Fatalf("expected no password, got %q", pw)
	}
}

func TestGenerateBoundedRetries(t *testing.T) {
	// Every draw returns the same character, so the second position can
	// never be filled without a duplicate.
	src := &fixedSource{idx: 3}
	s := DefaultSettings()
	s.Length = 2

	_, err := Generate(s, src)
	if !errors.Is(err, ErrUnsatisfiable) {
		t.Fatal("expected ErrUnsatisfiable, got", err)
	}
	if src.calls != 1+MaxAttempts {
		t.Fatalf("expected %v draws, got %v", 1+MaxAttempts, src.calls)
	}
}

func TestGenerateSourceError(t *testing.T) {
	boom := errors.New("entropy exhausted")
	_, err := Generate(DefaultSettings(), failingSource{boom})
	if !errors.Is(err, boom) {
		t.Fatal("expected the source error, got", err)
	}
}

func TestGenerateRejectsBadLength(t *testing.T) {
	s := DefaultSettings()
	s.Length = 0
	if _, err := Generate(s, CryptoSource()); err == nil {
		t.Fatal("expected a zero length to fail")
	}
}

func TestGenerateHugeLength(t *testing.T) {
	for _, allowDuplicates := range []bool{false, true} {
		s := DefaultSettings()
		s.AllowDuplicates = allowDuplicates
		s.Length = math.MaxInt

		src := &fixedSource{}
		pw, err := Generate(s, src)
		if !errors.Is(err, ErrUnsatisfiable) {
			t.Fatal("expected ErrUnsatisfiable for a MaxInt length, got", err)
		}
		if pw != "" || src.calls != 0 {
			t.Fatalf("expected no sampling, got %q after %v draws", pw, src.calls)
		}
	}

	s := DefaultSettings()
	s.AllowDuplicates = true
	s.Length = MaxLength
	pw, err := Generate(s, CryptoSource())
	if err != nil {
		t.Fatal(err)
	}
	if len([]rune(pw)) != MaxLength {
		t.Fatalf("expected %v characters, got %v", MaxLength, len([]rune(pw)))
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	s := DefaultSettings()
	s.Quantity = 5

	first, err := GenerateBatch(s, SeededSource(42))
	if err != nil {
		t.Fatal(err)
	}
	second, err := GenerateBatch(s, SeededSource(42))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed produced %v and %v", first, second)
	}

	other, err := GenerateBatch(s, SeededSource(43))
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(first, other) {
		t.Fatal("different seeds produced the same batch")
	}
}

func TestGenerateBatch(t *testing.T) {
	s := DefaultSettings()
	s.Quantity = 25
	s.Length = 16

	passwords, err := GenerateBatch(s, CryptoSource())
	if err != nil {
		t.Fatal(err)
	}
	if len(passwords) != 25 {
		t.Fatalf("expected 25 passwords, got %v", len(passwords))
	}
	for _, pw := range passwords {
		checkPassword(t, s, pw)
	}
}

func TestGenerateBatchConstraintsArePerPassword(t *testing.T) {
	// Fifty unique digits do not exist, so this only succeeds if the
	// duplicate check is reset between passwords.
	s := Settings{Length: 5, Quantity: 10, Numbers: true, AllowSequential: true}

	passwords, err := GenerateBatch(s, CryptoSource())
	if err != nil {
		t.Fatal(err)
	}
	if len(passwords) != 10 {
		t.Fatalf("expected 10 passwords, got %v", len(passwords))
	}
}

func TestGenerateBatchAborted(t *testing.T) {
	s := Settings{Length: 20, Quantity: 3, Numbers: true}

	passwords, err := GenerateBatch(s, CryptoSource())
	if passwords != nil {
		t.Fatal("expected no passwords from an aborted batch, got", passwords)
	}

	var aborted *BatchAbortedError
	if !errors.As(err, &aborted) {
		t.Fatal("expected a BatchAbortedError, got", err)
	}
	if aborted.Index != 0 {
		t.Fatal("expected the batch to abort at index 0, got", aborted.Index)
	}
	if !errors.Is(err, ErrUnsatisfiable) {
		t.Fatal("expected the batch error to wrap ErrUnsatisfiable, got", err)
	}
}

func TestGenerateBatchHugeQuantity(t *testing.T) {
	s := DefaultSettings()
	s.Uppercase, s.Lowercase, s.Numbers, s.Symbols = false, false, false, false
	s.Quantity = math.MaxInt

	var aborted *BatchAbortedError
	_, err := GenerateBatch(s, CryptoSource())
	if !errors.As(err, &aborted) || !errors.Is(err, ErrEmptyAlphabet) {
		t.Fatal("expected a batch aborted on ErrEmptyAlphabet, got", err)
	}

	s = DefaultSettings()
	s.Quantity = math.MaxInt
	src := &fixedSource{}
	_, err = GenerateBatch(s, src)
	if !errors.As(err, &aborted) || !errors.Is(err, ErrUnsatisfiable) {
		t.Fatal("expected a batch aborted on ErrUnsatisfiable, got", err)
	}
	if src.calls != 0 {
		t.Fatalf("expected no sampling, got %v draws", src.calls)
	}
}
