package assistant

import (
	"context"
	"sync"
	"time"
)

// Sender values of a Turn.
const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// Turn is a single chat message.
type Turn struct {
	Sender string    `json:"sender"`
	Text   string    `json:"text"`
	At     time.Time `json:"at"`
}

// History stores the conversation of each session.
type History interface {
	Append(ctx context.Context, session string, turns ...Turn) error
	Load(ctx context.Context, session string) ([]Turn, error)
	Reset(ctx context.Context, session string) error
}

// MemoryHistory keeps conversations in process memory, trimmed to the
// most recent limit turns per session.
type MemoryHistory struct {
	mu    sync.Mutex
	limit int
	turns map[string][]Turn
}

func NewMemoryHistory(limit int) *MemoryHistory {
	return &MemoryHistory{limit: limit, turns: make(map[string][]Turn)}
}

func (h *MemoryHistory) Append(_ context.Context, session string, turns ...Turn) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	all := append(h.turns[session], turns...)
	if h.limit > 0 && len(all) > h.limit {
		all = append([]Turn(nil), all[len(all)-h.limit:]...)
	}
	h.turns[session] = all
	return nil
}

func (h *MemoryHistory) Load(_ context.Context, session string) ([]Turn, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Turn{}, h.turns[session]...), nil
}

func (h *MemoryHistory) Reset(_ context.Context, session string) error {
	h.mu.Lock()
	delete(h.turns, session)
	h.mu.Unlock()
	return nil
}
