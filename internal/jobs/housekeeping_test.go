package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"grandstay/internal/hotel"
	"grandstay/internal/models"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(msg string) {
	m.Called(msg)
}

func TestRunDailyCleaning(t *testing.T) {
	store, err := hotel.NewStore(hotel.DefaultSeed())
	require.NoError(t, err)
	_, err = store.AdvanceTaskStatus("TSK-002", models.TaskCompleted)
	require.NoError(t, err)

	pub := new(MockPublisher)
	pub.On("Publish", "Daily cleaning scheduled for 1 rooms").Once()

	s := NewScheduler(store, pub, nil)
	assert.Equal(t, 1, s.RunDailyCleaning())
	assert.Equal(t, 0, s.RunDailyCleaning())
	pub.AssertExpectations(t)
}

func TestStartRejectsBadSpec(t *testing.T) {
	store, err := hotel.NewStore(hotel.DefaultSeed())
	require.NoError(t, err)

	s := NewScheduler(store, nil, nil)
	assert.Error(t, s.Start("not a cron line"))
}

func TestStartAndStop(t *testing.T) {
	store, err := hotel.NewStore(hotel.DefaultSeed())
	require.NoError(t, err)

	s := NewScheduler(store, nil, nil)
	require.NoError(t, s.Start(""))
	<-s.Stop().Done()
}
