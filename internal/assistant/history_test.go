package assistant

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryHistoryLimit(t *testing.T) {
	h := NewMemoryHistory(3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, h.Append(ctx, "s", Turn{Sender: SenderUser, Text: fmt.Sprint(i)}))
	}
	turns, err := h.Load(ctx, "s")
	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.Equal(t, "2", turns[0].Text)
	assert.Equal(t, "4", turns[2].Text)
}

func TestMemoryHistoryIsolation(t *testing.T) {
	h := NewMemoryHistory(0)
	ctx := context.Background()

	require.NoError(t, h.Append(ctx, "a", Turn{Text: "for a"}))
	require.NoError(t, h.Append(ctx, "b", Turn{Text: "for b"}))
	require.NoError(t, h.Reset(ctx, "a"))

	a, err := h.Load(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, a)
	b, err := h.Load(ctx, "b")
	require.NoError(t, err)
	assert.Len(t, b, 1)

	// Load returns a copy.
	b[0].Text = "mutated"
	again, _ := h.Load(ctx, "b")
	assert.Equal(t, "for b", again[0].Text)
}

func TestHistoryImplementations(t *testing.T) {
	var _ History = (*MemoryHistory)(nil)
	var _ History = (*RedisHistory)(nil)
}

func TestRedisHistoryKey(t *testing.T) {
	h := NewRedisHistory(nil, 10, 0)
	assert.Equal(t, "grandstay:chat:abc", h.key("abc"))
	assert.NoError(t, h.Append(context.Background(), "abc"))
}
