package models

import (
	"strings"
	"time"
)

type DeliveryStatus string

const (
	DeliveryStatusPending        DeliveryStatus = "pending"
	DeliveryStatusProcessing     DeliveryStatus = "processing"
	DeliveryStatusOutForDelivery DeliveryStatus = "out_for_delivery"
	DeliveryStatusDelivered      DeliveryStatus = "delivered"
	DeliveryStatusFailed         DeliveryStatus = "failed"
	DeliveryStatusCancelled      DeliveryStatus = "cancelled"
)

type Delivery struct {
	ID          string         `bson:"_id,omitempty" json:"id,omitempty"`
	Order       string         `bson:"order" json:"order" validate:"required,objectid"`
	DeliveryBoy string         `bson:"deliveryBoy" json:"deliveryBoy" validate:"required,min=2,max=100"`
	Status      DeliveryStatus `bson:"status" json:"status" validate:"required,oneof=pending processing out_for_delivery delivered failed cancelled"`
	TrackingURL string         `bson:"trackingURL,omitempty" json:"trackingURL,omitempty" validate:"omitempty,url"`
	// Estimated time to delivery in hours.
	EstimatedDeliveryTime float64   `bson:"estimatedDeliveryTime" json:"estimatedDeliveryTime" validate:"gte=0"`
	CreatedAt             time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (d *Delivery) Normalize() {
	d.Order = strings.TrimSpace(d.Order)
	d.DeliveryBoy = strings.TrimSpace(d.DeliveryBoy)
	d.TrackingURL = strings.TrimSpace(d.TrackingURL)
	if d.Status == "" {
		d.Status = DeliveryStatusPending
	}
}
