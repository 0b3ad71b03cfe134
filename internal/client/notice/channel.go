// Package notice implements the transient status line shown to the user.
package notice

import (
	"sync"
	"time"
)

const DefaultTTL = 3 * time.Second

// Channel holds at most one message. Show replaces it and restarts the expiry
// timer; nothing is queued.
type Channel struct {
	mu      sync.Mutex
	ttl     time.Duration
	message string
	timer   *time.Timer
	// seq identifies the message a timer was armed for, so a stale timer that
	// fires after a replacement does not clear the newer message.
	seq uint64
}

func New(ttl time.Duration) *Channel {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Channel{ttl: ttl}
}

func (c *Channel) Show(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.seq++
	c.message = message

	seq := c.seq
	c.timer = time.AfterFunc(c.ttl, func() { c.expire(seq) })
}

func (c *Channel) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.seq++
	c.message = ""
}

// Current returns the active message, if any.
func (c *Channel) Current() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.message, c.message != ""
}

// Latest returns the active message with the sequence number of the last Show
// or Clear. Two shows of the same text have different sequence numbers.
func (c *Channel) Latest() (string, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.message, c.seq
}

func (c *Channel) expire(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		return
	}
	c.message = ""
	c.timer = nil
}

func (c *Channel) stopLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
