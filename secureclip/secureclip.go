package secureclip

import (
	"sync"
	"time"

	"github.com/atotto/clipboard"
)

// DefaultTimeout is how long a copied value stays on the clipboard.
const DefaultTimeout = 30 * time.Second

// Clipboard copies secrets to the system clipboard and wipes them after a
// timeout. A newer Clip call postpones the wipe.
type Clipboard struct {
	timeout  time.Duration
	writeAll func(string) error

	mu    sync.Mutex
	timer *time.Timer
}

// New returns a Clipboard that clears itself `timeout` after the last Clip.
// A zero timeout means DefaultTimeout.
func New(timeout time.Duration) *Clipboard {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Clipboard{
		timeout:  timeout,
		writeAll: clipboard.WriteAll,
	}
}

// Timeout returns the delay before the clipboard is cleared.
func (c *Clipboard) Timeout() time.Duration {
	return c.timeout
}

// Clip copies `secret` to the clipboard and schedules it to be cleared.
func (c *Clipboard) Clip(secret string) error {
	if err := c.writeAll(secret); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.timeout, func() {
		c.writeAll("")
	})
	return nil
}

// Clear wipes the clipboard immediately if a value copied by Clip is still
// waiting to be cleared. Clipboard contents that Clip did not put there are
// left alone.
func (c *Clipboard) Clear() error {
	c.mu.Lock()
	pending := c.timer != nil && c.timer.Stop()
	c.timer = nil
	c.mu.Unlock()
	if !pending {
		return nil
	}
	return c.writeAll("")
}
