package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type captureBroadcaster struct {
	got []Notification
}

func (c *captureBroadcaster) Broadcast(n Notification) {
	c.got = append(c.got, n)
}

func TestFeedExpiry(t *testing.T) {
	now := time.Date(2025, 10, 26, 12, 0, 0, 0, time.UTC)
	out := &captureBroadcaster{}
	f := NewFeed(0, out)
	f.SetClock(func() time.Time { return now })

	_, ok := f.Current()
	assert.False(t, ok)

	f.Publish("Reservation RES-12345 Confirmed!")
	n, ok := f.Current()
	assert.True(t, ok)
	assert.Equal(t, "Reservation RES-12345 Confirmed!", n.Message)

	now = now.Add(3999 * time.Millisecond)
	_, ok = f.Current()
	assert.True(t, ok)

	now = now.Add(time.Millisecond)
	_, ok = f.Current()
	assert.False(t, ok)

	assert.Len(t, out.got, 1)
}

func TestFeedPublishReplacesCurrent(t *testing.T) {
	f := NewFeed(time.Minute)
	f.Publish("first")
	f.Publish("second")

	n, ok := f.Current()
	assert.True(t, ok)
	assert.Equal(t, "second", n.Message)
}
