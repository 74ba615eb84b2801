package models

// OrderType separates goods from services.
type OrderType string

const (
	OrderSupply  OrderType = "SUPPLY"
	OrderService OrderType = "SERVICE"
)

// OrderStatus represents the possible states of a vendor order
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderAccepted   OrderStatus = "ACCEPTED"
	OrderInProgress OrderStatus = "IN_PROGRESS"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderDelivered  OrderStatus = "DELIVERED"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderAccepted, OrderInProgress, OrderCompleted, OrderDelivered:
		return true
	}
	return false
}

// Active reports whether a vendor still has work to do on the order.
func (s OrderStatus) Active() bool {
	return s == OrderPending || s == OrderAccepted || s == OrderInProgress
}

// Order represents a purchase placed with a vendor
type Order struct {
	ID       string      `json:"id"`
	Item     string      `json:"item"`
	Type     OrderType   `json:"type"`
	Quantity int         `json:"quantity"`
	Amount   float64     `json:"amount"`
	Status   OrderStatus `json:"status"`
	Vendor   string      `json:"vendor"`
	Date     string      `json:"date"`
}
