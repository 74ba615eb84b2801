package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingTransitions(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingConfirmed, BookingReady, true},
		{BookingReady, BookingCheckedIn, true},
		{BookingCheckedIn, BookingCheckedOut, true},
		{BookingConfirmed, BookingCancelled, true},
		{BookingCheckedIn, BookingCancelled, true},
		{BookingConfirmed, BookingCheckedOut, false},
		{BookingCheckedOut, BookingCheckedIn, false},
		{BookingCancelled, BookingConfirmed, false},
		{BookingReady, BookingReady, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
	assert.True(t, BookingCheckedOut.Terminal())
	assert.True(t, BookingCancelled.Terminal())
	assert.False(t, BookingReady.Terminal())
}

func TestTaskTransitions(t *testing.T) {
	assert.True(t, TaskPending.CanTransitionTo(TaskInProgress))
	assert.True(t, TaskPending.CanTransitionTo(TaskCompleted))
	assert.True(t, TaskInProgress.CanTransitionTo(TaskCompleted))
	assert.False(t, TaskCompleted.CanTransitionTo(TaskPending))
	assert.False(t, TaskInProgress.CanTransitionTo(TaskPending))
}

func TestOrderTransitions(t *testing.T) {
	supply := Order{Type: OrderSupply, Status: OrderAccepted}
	service := Order{Type: OrderService, Status: OrderAccepted}

	assert.True(t, supply.CanTransitionTo(OrderDelivered))
	assert.False(t, service.CanTransitionTo(OrderDelivered))
	assert.True(t, service.CanTransitionTo(OrderCompleted))
	assert.True(t, Order{Status: OrderPending}.CanTransitionTo(OrderAccepted))
	assert.False(t, Order{Status: OrderPending}.CanTransitionTo(OrderCompleted))
	assert.False(t, Order{Type: OrderSupply, Status: OrderDelivered}.CanTransitionTo(OrderCompleted))
}

func TestValidateTask(t *testing.T) {
	valid := Task{Type: TaskMaintenance, Description: "New Issue Reported", RoomNumber: "---", Priority: PriorityMedium}
	assert.NoError(t, ValidateTask(valid))

	missing := Task{Type: "PLUMBING", Priority: PriorityHigh}
	err := ValidateTask(missing)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "Type failed oneof")
		assert.Contains(t, err.Error(), "Description failed required")
	}
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("staff")
	assert.NoError(t, err)
	assert.Equal(t, RoleStaff, r)

	_, err = ParseRole("NONE")
	assert.Error(t, err)
}
