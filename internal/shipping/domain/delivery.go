package domain

import (
	"context"
	"time"
)

// DeliveryStatus is the delivery state machine. Only SCHEDULED is produced
// by the current operation set; OUT_FOR_DELIVERY and DELIVERED are declared
// for completeness.
type DeliveryStatus string

const (
	DeliveryStatusScheduled      DeliveryStatus = "SCHEDULED"
	DeliveryStatusOutForDelivery DeliveryStatus = "OUT_FOR_DELIVERY"
	DeliveryStatusDelivered      DeliveryStatus = "DELIVERED"
)

// Delivery is a scheduled fulfillment record for a fully paid order.
// ScheduledDate is an opaque caller-supplied token; no calendar validation
// happens here.
type Delivery struct {
	ID            int            `json:"id"`
	OrderID       int            `json:"order_id"`
	ScheduledDate string         `json:"scheduled_date"`
	Status        DeliveryStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
}

// DeliveryRepository defines the contract for delivery data access
type DeliveryRepository interface {
	Create(ctx context.Context, delivery *Delivery) error
	FindByID(ctx context.Context, id int) (*Delivery, error)
	FindAll(ctx context.Context) ([]Delivery, error)
}
