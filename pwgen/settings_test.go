package pwgen

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	g := New(nil)
	snap := g.Snapshot()
	if snap.Settings != DefaultSettings() {
		t.Fatalf("new generator has settings %+v", snap.Settings)
	}
	s := snap.Settings
	if s.Length != 12 || s.Quantity != 1 {
		t.Fatalf("expected length 12 and quantity 1, got %v and %v", s.Length, s.Quantity)
	}
	if !s.Uppercase || !s.Lowercase || !s.Numbers || !s.Symbols {
		t.Fatal("every class should be enabled by default")
	}
	if s.ExcludeSimilar || s.AllowDuplicates || s.AllowSequential {
		t.Fatal("every constraint should be active by default")
	}
	if len(snap.Output) != 0 {
		t.Fatal("new generator should have no output")
	}
}

func TestLengthAndQuantityFloor(t *testing.T) {
	g := New(nil)
	g.SetLength(1)
	g.DecreaseLength()
	g.DecreaseLength()
	if g.Settings().Length != 1 {
		t.Fatal("length should floor at 1, got", g.Settings().Length)
	}

	g.SetLength(-4)
	if g.Settings().Length != 1 {
		t.Fatal("negative length should floor at 1, got", g.Settings().Length)
	}
	g.IncreaseLength()
	if g.Settings().Length != 2 {
		t.Fatal("expected length 2, got", g.Settings().Length)
	}

	g.DecreaseQuantity()
	if g.Settings().Quantity != 1 {
		t.Fatal("quantity should floor at 1, got", g.Settings().Quantity)
	}
	g.SetQuantity(0)
	if g.Settings().Quantity != 1 {
		t.Fatal("zero quantity should floor at 1, got", g.Settings().Quantity)
	}
	g.IncreaseQuantity()
	g.IncreaseQuantity()
	if g.Settings().Quantity != 3 {
		t.Fatal("expected quantity 3, got", g.Settings().Quantity)
	}
}

func TestToggles(t *testing.T) {
	g := New(nil)
	for _, c := range []Class{Uppercase, Lowercase, Numbers, Symbols} {
		g.ToggleClass(c)
	}
	s := g.Settings()
	if s.Uppercase || s.Lowercase || s.Numbers || s.Symbols {
		t.Fatalf("expected every class disabled, got %+v", s)
	}

	g.ToggleSimilarExclusion()
	g.ToggleDuplicates()
	g.ToggleSequential()
	s = g.Settings()
	if !s.ExcludeSimilar || !s.AllowDuplicates || !s.AllowSequential {
		t.Fatalf("expected every toggle flipped, got %+v", s)
	}

	g.ToggleSequential()
	if g.Settings().AllowSequential {
		t.Fatal("second toggle should restore the setting")
	}
}

func TestGeneratorGenerateAndClear(t *testing.T) {
	g := New(SeededSource(7))
	g.SetQuantity(4)

	pw, err := g.GenerateOne()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(g.Output(), []string{pw}) {
		t.Fatalf("expected output [%v], got %v", pw, g.Output())
	}

	batch, err := g.GenerateBatch()
	if err != nil {
		t.Fatal(err)
	}
	if len(batch) != 4 {
		t.Fatalf("expected 4 passwords, got %v", len(batch))
	}
	if !reflect.DeepEqual(batch, g.Snapshot().Output) {
		t.Fatal("snapshot does not match the batch")
	}

	g.Clear()
	if len(g.Output()) != 0 {
		t.Fatal("clear did not empty the output")
	}
	if g.Settings().Quantity != 4 {
		t.Fatal("clear must not reset settings")
	}
}

func TestGeneratorFailureKeepsOutput(t *testing.T) {
	g := New(nil)
	pw, err := g.GenerateOne()
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range []Class{Uppercase, Lowercase, Numbers, Symbols} {
		g.ToggleClass(c)
	}
	if _, err := g.GenerateOne(); !errors.Is(err, ErrEmptyAlphabet) {
		t.Fatal("expected ErrEmptyAlphabet, got", err)
	}
	if _, err := g.GenerateBatch(); !errors.Is(err, ErrEmptyAlphabet) {
		t.Fatal("expected ErrEmptyAlphabet, got", err)
	}

	if !reflect.DeepEqual(g.Output(), []string{pw}) {
		t.Fatalf("failed generation replaced the output: %v", g.Output())
	}
}

func TestGeneratorHugeSizes(t *testing.T) {
	g := New(nil)
	g.ToggleDuplicates()
	g.SetLength(math.MaxInt)
	if _, err := g.GenerateOne(); !errors.Is(err, ErrUnsatisfiable) {
		t.Fatal("expected ErrUnsatisfiable for a MaxInt length, got", err)
	}

	g = New(nil)
	for _, c := range []Class{Uppercase, Lowercase, Numbers, Symbols} {
		g.ToggleClass(c)
	}
	g.SetQuantity(math.MaxInt)
	_, err := g.GenerateBatch()
	var aborted *BatchAbortedError
	if !errors.As(err, &aborted) || !errors.Is(err, ErrEmptyAlphabet) {
		t.Fatal("expected a batch aborted on ErrEmptyAlphabet, got", err)
	}
	if len(g.Output()) != 0 {
		t.Fatal("failed generation should not store output")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := New(nil)
	if _, err := g.GenerateOne(); err != nil {
		t.Fatal(err)
	}

	snap := g.Snapshot()
	snap.Output[0] = "tampered"
	snap.Settings.Length = 99
	if g.Output()[0] == "tampered" {
		t.Fatal("snapshot output aliases the generator")
	}
	if g.Settings().Length != DefaultLength {
		t.Fatal("snapshot settings alias the generator")
	}
}
