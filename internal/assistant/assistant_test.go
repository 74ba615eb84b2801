package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"grandstay/internal/models"
)

// MockProvider is a mock implementation of providers.Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) Complete(ctx context.Context, systemPrompt, prompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, prompt)
	return args.String(0), args.Error(1)
}

type countingRecorder struct {
	outcomes []string
}

func (r *countingRecorder) ChatReply(role, outcome string) {
	r.outcomes = append(r.outcomes, role+":"+outcome)
}

func TestReplyUsesRolePrompt(t *testing.T) {
	p := new(MockProvider)
	p.On("Complete", mock.Anything, SystemInstruction(models.RoleAdmin, "Occupancy: 17%"), "How is revenue?").
		Return("Revenue peaked on Saturday.", nil)

	rec := &countingRecorder{}
	a := New(p, nil, WithRecorder(rec))
	reply, err := a.Reply(context.Background(), "How is revenue?", models.RoleAdmin, "Occupancy: 17%")

	require.NoError(t, err)
	assert.Equal(t, Reply{Text: "Revenue peaked on Saturday."}, reply)
	assert.Equal(t, []string{"ADMIN:ok"}, rec.outcomes)
	p.AssertExpectations(t)
}

func TestReplyFallbacks(t *testing.T) {
	failing := new(MockProvider)
	failing.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("401 unauthorized"))
	empty := new(MockProvider)
	empty.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("  ", nil)

	tests := []struct {
		name string
		a    *Assistant
		want string
	}{
		{"provider error", New(failing, nil), NoProviderReply},
		{"no provider", New(nil, nil), NoProviderReply},
		{"empty reply", New(empty, nil), EmptyReply},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := tt.a.Reply(context.Background(), "hello", models.RoleGuest, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, reply.Text)
			assert.True(t, reply.Fallback)
		})
	}
}

func TestReplyRejectsBlankPrompt(t *testing.T) {
	p := new(MockProvider)
	a := New(p, nil)

	_, err := a.Reply(context.Background(), "   ", models.RoleStaff, "")
	assert.ErrorIs(t, err, ErrEmptyPrompt)
	p.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func TestReplyTimeout(t *testing.T) {
	p := new(MockProvider)
	p.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return("", context.DeadlineExceeded)

	a := New(p, nil, WithTimeout(10*time.Millisecond))
	reply, err := a.Reply(context.Background(), "slow", models.RoleVendor, "")
	require.NoError(t, err)
	assert.Equal(t, NoProviderReply, reply.Text)
}

func TestConverseKeepsHistory(t *testing.T) {
	p := new(MockProvider)
	p.On("Complete", mock.Anything, mock.Anything, "Any towels?").Return("Housekeeping is on the way.", nil)

	a := New(p, NewMemoryHistory(10))
	_, err := a.Converse(context.Background(), "s1", models.RoleGuest, "Any towels?", "")
	require.NoError(t, err)

	turns, err := a.Transcript(context.Background(), "s1", models.RoleGuest)
	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.Equal(t, Greeting(models.RoleGuest), turns[0].Text)
	assert.Equal(t, SenderUser, turns[1].Sender)
	assert.Equal(t, "Housekeeping is on the way.", turns[2].Text)
}

func TestConverseResetsOnRoleChange(t *testing.T) {
	p := new(MockProvider)
	p.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("ok", nil)

	a := New(p, NewMemoryHistory(10))
	_, err := a.Converse(context.Background(), "s1", models.RoleGuest, "hi", "")
	require.NoError(t, err)

	turns, err := a.Transcript(context.Background(), "s1", models.RoleStaff)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "Hello! I am the Grand Stay Assistant. How can I assist you as a staff today?", turns[0].Text)
}

func TestFailedTurnIsStillRecorded(t *testing.T) {
	a := New(nil, NewMemoryHistory(10))

	reply, err := a.Converse(context.Background(), "s2", models.RoleVendor, "Invoice status?", "")
	require.NoError(t, err)
	assert.True(t, reply.Fallback)

	turns, err := a.Transcript(context.Background(), "s2", models.RoleVendor)
	require.NoError(t, err)
	assert.Equal(t, NoProviderReply, turns[len(turns)-1].Text)
}

func TestIdleSessionsArePruned(t *testing.T) {
	now := time.Date(2025, 10, 26, 9, 0, 0, 0, time.UTC)
	a := New(nil, NewMemoryHistory(10), WithSessionTTL(time.Hour))
	a.clock = func() time.Time { return now }

	_, err := a.Transcript(context.Background(), "old", models.RoleGuest)
	require.NoError(t, err)
	now = now.Add(30 * time.Minute)
	_, err = a.Transcript(context.Background(), "fresh", models.RoleStaff)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Sessions())

	now = now.Add(45 * time.Minute)
	assert.Equal(t, 1, a.Sessions())

	now = now.Add(time.Hour)
	assert.Equal(t, 0, a.Sessions())
}

func TestGreetingUsesLowerCaseRole(t *testing.T) {
	assert.Equal(t, "Hello! I am the Grand Stay Assistant. How can I assist you as a guest today?", Greeting(models.RoleGuest))
}
