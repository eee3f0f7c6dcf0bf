// Package uuidgen generates version 4 and version 7 UUIDs.
package uuidgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MaxCount is the largest batch a Generator produces.
const MaxCount = 1000

// ErrCount is returned when a batch size is outside 1..MaxCount.
var ErrCount = errors.New("uuid count out of range")

// Generator keeps the last generated UUIDs of each version and the number of
// UUIDs a batch produces.
type Generator struct {
	V4    []string
	V7    []string
	Count int
}

// New returns a Generator with a batch size of 1.
func New() *Generator {
	return &Generator{Count: 1}
}

// GenerateV4 replaces the v4 output with a single UUID.
func (g *Generator) GenerateV4() error {
	ids, err := generate(1, uuid.NewRandom)
	if err != nil {
		return err
	}
	g.V4 = ids
	return nil
}

// GenerateV4Batch replaces the v4 output with Count UUIDs.
func (g *Generator) GenerateV4Batch() error {
	ids, err := generate(g.Count, uuid.NewRandom)
	if err != nil {
		return err
	}
	g.V4 = ids
	return nil
}

// GenerateV7 replaces the v7 output with a single UUID.
func (g *Generator) GenerateV7() error {
	ids, err := generate(1, uuid.NewV7)
	if err != nil {
		return err
	}
	g.V7 = ids
	return nil
}

// GenerateV7Batch replaces the v7 output with Count UUIDs.
func (g *Generator) GenerateV7Batch() error {
	ids, err := generate(g.Count, uuid.NewV7)
	if err != nil {
		return err
	}
	g.V7 = ids
	return nil
}

// IncreaseCount raises the batch size, capping at MaxCount.
func (g *Generator) IncreaseCount() {
	if g.Count < MaxCount {
		g.Count++
	}
}

// SetCount sets the batch size, rejecting values outside 1..MaxCount.
func (g *Generator) SetCount(n int) error {
	if n < 1 || n > MaxCount {
		return fmt.Errorf("%w: %d is not between 1 and %d", ErrCount, n, MaxCount)
	}
	g.Count = n
	return nil
}

// DecreaseCount lowers the batch size, flooring at 1.
func (g *Generator) DecreaseCount() {
	if g.Count > 1 {
		g.Count--
	}
}

// Clear drops both outputs and resets the batch size.
func (g *Generator) Clear() {
	g.V4 = nil
	g.V7 = nil
	g.Count = 1
}

// Lines renders both outputs under headers, in the export layout.
func (g *Generator) Lines() []string {
	return []string{
		"UUID v4:",
		strings.Join(g.V4, "\n"),
		"",
		"UUID v7:",
		strings.Join(g.V7, "\n"),
	}
}

func generate(n int, newUUID func() (uuid.UUID, error)) ([]string, error) {
	if n < 1 || n > MaxCount {
		return nil, fmt.Errorf("%w: %d is not between 1 and %d", ErrCount, n, MaxCount)
	}
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id, err := newUUID()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id.String())
	}
	return ids, nil
}
