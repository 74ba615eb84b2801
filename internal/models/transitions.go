package models

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingConfirmed: {BookingReady, BookingCancelled},
	BookingReady:     {BookingCheckedIn, BookingCancelled},
	BookingCheckedIn: {BookingCheckedOut, BookingCancelled},
}

var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskPending:    {TaskInProgress, TaskCompleted},
	TaskInProgress: {TaskCompleted},
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderAccepted},
	OrderAccepted:   {OrderInProgress, OrderCompleted, OrderDelivered},
	OrderInProgress: {OrderCompleted, OrderDelivered},
}

func allowed[S comparable](table map[S][]S, from, to S) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether a booking may move from s to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return allowed(bookingTransitions, s, next)
}

// Terminal reports whether no further booking transition exists.
func (s BookingStatus) Terminal() bool {
	return len(bookingTransitions[s]) == 0
}

// CanTransitionTo reports whether a task may move from s to next.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	return allowed(taskTransitions, s, next)
}

// CanTransitionTo reports whether the order may move to next. Only supply
// orders are delivered; services are completed.
func (o Order) CanTransitionTo(next OrderStatus) bool {
	if next == OrderDelivered && o.Type != OrderSupply {
		return false
	}
	return allowed(orderTransitions, o.Status, next)
}
