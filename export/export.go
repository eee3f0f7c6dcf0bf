// Package export writes tool results to files under an export directory.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/avahowell/devkit/filelock"
)

// DefaultDir is the export directory used when none is configured.
const DefaultDir = "export"

// File names used by each tool.
const (
	PasswordFile = "password.txt"
	UUIDFile     = "uuid.txt"
	HashFile     = "hash.txt"
	NumberFile   = "number_conversion.txt"
	ColorFile    = "color_codes.txt"
	Base64File   = "base64.txt"
	DateFile     = "date.txt"
)

// Exporter writes files into Dir, creating it on first use.
type Exporter struct {
	Dir string
	log *slog.Logger
}

// New returns an Exporter rooted at dir. An empty dir means DefaultDir.
func New(dir string, log *slog.Logger) *Exporter {
	if dir == "" {
		dir = DefaultDir
	}
	if log == nil {
		log = slog.Default()
	}
	return &Exporter{Dir: dir, log: log}
}

// Path returns the path name would be written to.
func (e *Exporter) Path(name string) string {
	return filepath.Join(e.Dir, name)
}

// WriteLines writes lines, newline terminated, to name and returns the path
// written.
func (e *Exporter) WriteLines(name string, lines []string) (string, error) {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return e.Write(name, []byte(b.String()))
}

// Write replaces name with data while holding a lock on it.
func (e *Exporter) Write(name string, data []byte) (string, error) {
	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return "", fmt.Errorf("could not create export directory: %w", err)
	}
	path := e.Path(name)

	lock, err := filelock.Lock(path)
	if err != nil {
		return "", fmt.Errorf("could not lock %v: %w", path, err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			e.log.Warn("failed to release export lock", "path", path, "error", err)
		}
	}()

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("could not write %v: %w", path, err)
	}
	e.log.Info("exported", "path", path, "bytes", len(data))
	return path, nil
}
