package kafka

import "time"

// OrderLifecycleEvent is emitted whenever an order changes state.
type OrderLifecycleEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	OrderID     int       `json:"order_id"`
	VendorID    int       `json:"vendor_id,omitempty"`
	ProductID   int       `json:"product_id,omitempty"`
	Quantity    int       `json:"quantity,omitempty"`
	Amount      float64   `json:"amount,omitempty"`
	OrderStatus string    `json:"order_status,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderConfirmed    = "order.confirmed"
	EventTypeOrderPaid         = "order.paid"
	EventTypeDeliveryScheduled = "order.delivery_scheduled"
	EventTypeReturnApproved    = "order.return_approved"
)

// Kafka topics
const (
	TopicOrderLifecycle = "order-lifecycle"
)
