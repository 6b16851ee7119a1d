package studio

import (
	"context"
	"sync"
)

// MemoryClipboard is an in-process Clipboard holding the last written text.
// It serves clipboard-less hosts and tests.
type MemoryClipboard struct {
	mu   sync.RWMutex
	text string
}

func NewMemoryClipboard() *MemoryClipboard {
	return &MemoryClipboard{}
}

func (c *MemoryClipboard) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	c.text = text
	c.mu.Unlock()
	return nil
}

// Text returns the last written value.
func (c *MemoryClipboard) Text() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.text
}
