package sink

import (
	"sync"

	"github.com/hugolhafner/go-logline"
)

// Collector keeps every flushed line in memory.
type Collector struct {
	mu    sync.RWMutex
	lines []string
}

func NewCollector() *Collector {
	return &Collector{
		lines: make([]string, 0),
	}
}

func (c *Collector) Callback() logline.Callback {
	return c.collect
}

func (c *Collector) collect(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, text)
}

// Lines returns the raw flushed texts in delivery order.
func (c *Collector) Lines() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Collector) Entries() []logline.Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]logline.Entry, 0, len(c.lines))
	for _, text := range c.lines {
		out = append(out, logline.Decode(text))
	}
	return out
}

func (c *Collector) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.lines)
}

func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = make([]string, 0)
}
