// Package assistant answers free-text questions from any surface through an
// external language model. Failures never reach the caller as errors; they
// become fixed apology replies.
package assistant

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"grandstay/internal/assistant/providers"
	"grandstay/internal/models"
)

const (
	// NoProviderReply is returned whenever the provider call fails.
	NoProviderReply = "System requires an API Key for intelligent processing. Please check configuration."
	// EmptyReply is returned when the provider answers with no text.
	EmptyReply = "I apologize, but I couldn't process that request at the moment."
)

// ErrEmptyPrompt is returned for blank prompts; no provider call is made.
var ErrEmptyPrompt = errors.New("prompt is empty")

// Reply is the outcome of one chat turn.
type Reply struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}

// Recorder observes reply outcomes.
type Recorder interface {
	ChatReply(role, outcome string)
}

// Option configures an Assistant.
type Option func(*Assistant)

func WithTimeout(d time.Duration) Option {
	return func(a *Assistant) { a.timeout = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(a *Assistant) { a.logger = l }
}

func WithRecorder(r Recorder) Option {
	return func(a *Assistant) { a.recorder = r }
}

// WithSessionTTL sets how long an idle session keeps its role binding. Zero
// keeps bindings until Forget.
func WithSessionTTL(d time.Duration) Option {
	return func(a *Assistant) { a.sessionTTL = d }
}

type binding struct {
	role models.UserRole
	seen time.Time
}

// Assistant wraps a provider with role prompts, fallbacks and per-session history.
type Assistant struct {
	provider providers.Provider
	history  History
	timeout  time.Duration
	logger   *slog.Logger
	recorder Recorder
	clock    func() time.Time

	sessionTTL time.Duration
	mu         sync.Mutex
	roles      map[string]binding
}

// New creates an assistant. provider may be nil, in which case every reply
// is NoProviderReply.
func New(provider providers.Provider, history History, opts ...Option) *Assistant {
	if history == nil {
		history = NewMemoryHistory(50)
	}
	a := &Assistant{
		provider: provider,
		history:  history,
		timeout:  30 * time.Second,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:    time.Now,
		roles:    make(map[string]binding),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Assistant) record(role models.UserRole, outcome string) {
	if a.recorder != nil {
		a.recorder.ChatReply(string(role), outcome)
	}
}

// Reply answers prompt for role, grounding the model in contextData.
func (a *Assistant) Reply(ctx context.Context, prompt string, role models.UserRole, contextData string) (Reply, error) {
	if strings.TrimSpace(prompt) == "" {
		return Reply{}, ErrEmptyPrompt
	}
	if a.provider == nil {
		a.record(role, "unconfigured")
		return Reply{Text: NoProviderReply, Fallback: true}, nil
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	text, err := a.provider.Complete(ctx, SystemInstruction(role, contextData), prompt)
	if err != nil {
		a.logger.Error("chat completion failed", "provider", a.provider.Name(), "role", role, "error", err)
		a.record(role, "error")
		return Reply{Text: NoProviderReply, Fallback: true}, nil
	}
	if strings.TrimSpace(text) == "" {
		a.record(role, "empty")
		return Reply{Text: EmptyReply, Fallback: true}, nil
	}
	a.record(role, "ok")
	return Reply{Text: text}, nil
}

// Converse runs Reply and records both sides in the session history. A
// session whose role changed starts over from the role greeting.
func (a *Assistant) Converse(ctx context.Context, session string, role models.UserRole, prompt, contextData string) (Reply, error) {
	if strings.TrimSpace(prompt) == "" {
		return Reply{}, ErrEmptyPrompt
	}
	if err := a.ensureSession(ctx, session, role); err != nil {
		return Reply{}, err
	}

	asked := a.clock()
	reply, err := a.Reply(ctx, prompt, role, contextData)
	if err != nil {
		return Reply{}, err
	}
	err = a.history.Append(ctx, session,
		Turn{Sender: SenderUser, Text: prompt, At: asked},
		Turn{Sender: SenderAI, Text: reply.Text, At: a.clock()},
	)
	if err != nil {
		a.logger.Warn("chat history not saved", "session", session, "error", err)
	}
	return reply, nil
}

// Transcript returns the session history, opening it with the greeting if
// the session has not chatted yet.
func (a *Assistant) Transcript(ctx context.Context, session string, role models.UserRole) ([]Turn, error) {
	if err := a.ensureSession(ctx, session, role); err != nil {
		return nil, err
	}
	return a.history.Load(ctx, session)
}

func (a *Assistant) ensureSession(ctx context.Context, session string, role models.UserRole) error {
	now := a.clock()
	a.mu.Lock()
	a.pruneLocked(now)
	prev, seen := a.roles[session]
	a.roles[session] = binding{role: role, seen: now}
	a.mu.Unlock()

	if seen && prev.role == role {
		return nil
	}
	if err := a.history.Reset(ctx, session); err != nil {
		return err
	}
	return a.history.Append(ctx, session, Turn{Sender: SenderAI, Text: Greeting(role), At: a.clock()})
}

// pruneLocked drops bindings idle for longer than the session TTL.
func (a *Assistant) pruneLocked(now time.Time) {
	if a.sessionTTL <= 0 {
		return
	}
	for id, b := range a.roles {
		if now.Sub(b.seen) > a.sessionTTL {
			delete(a.roles, id)
		}
	}
}

// Sessions returns the number of sessions with a live role binding.
func (a *Assistant) Sessions() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pruneLocked(a.clock())
	return len(a.roles)
}

// Forget drops the session's role binding and history.
func (a *Assistant) Forget(ctx context.Context, session string) error {
	a.mu.Lock()
	delete(a.roles, session)
	a.mu.Unlock()
	return a.history.Reset(ctx, session)
}
