// Package notify publishes short-lived confirmation toasts to every surface.
package notify

import (
	"sync"
	"time"
)

// DefaultTTL is how long a toast stays current.
const DefaultTTL = 4 * time.Second

// Notification is a single toast.
type Notification struct {
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Broadcaster is told about every published notification.
type Broadcaster interface {
	Broadcast(n Notification)
}

// Feed holds the most recent toast until it expires. Publishing replaces
// the current toast.
type Feed struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	current *Notification
	outs    []Broadcaster
}

func NewFeed(ttl time.Duration, outs ...Broadcaster) *Feed {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Feed{ttl: ttl, now: time.Now, outs: outs}
}

// SetClock replaces time.Now.
func (f *Feed) SetClock(now func() time.Time) {
	f.mu.Lock()
	f.now = now
	f.mu.Unlock()
}

// Publish makes msg the current toast and forwards it to every broadcaster.
func (f *Feed) Publish(msg string) Notification {
	f.mu.Lock()
	n := Notification{Message: msg, At: f.now()}
	f.current = &n
	outs := f.outs
	f.mu.Unlock()

	for _, o := range outs {
		o.Broadcast(n)
	}
	return n
}

// Current returns the live toast, if one has not expired yet.
func (f *Feed) Current() (Notification, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current == nil || f.now().Sub(f.current.At) >= f.ttl {
		return Notification{}, false
	}
	return *f.current, true
}
