package models

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order links user, products, payment and delivery by identifier. Payment and
// delivery are required: an order only exists once both are provisioned.
type Order struct {
	ID         string      `bson:"_id,omitempty" json:"id,omitempty"`
	User       string      `bson:"user" json:"user" validate:"required,objectid"`
	Product    []string    `bson:"product" json:"product" validate:"required,min=1,dive,objectid"`
	Address    string      `bson:"address" json:"address" validate:"required,max=500"`
	TotalPrice float64     `bson:"totalPrice" json:"totalPrice" validate:"gt=0,money"`
	Status     OrderStatus `bson:"status" json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
	Payment    string      `bson:"payment" json:"payment" validate:"required,objectid"`
	Delivery   string      `bson:"delivery" json:"delivery" validate:"required,objectid"`
	CreatedAt  time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time   `bson:"updatedAt" json:"updatedAt"`
}

func (o *Order) Normalize() {
	o.User = strings.TrimSpace(o.User)
	for i := range o.Product {
		o.Product[i] = strings.TrimSpace(o.Product[i])
	}
	o.Address = strings.TrimSpace(o.Address)
	o.Payment = strings.TrimSpace(o.Payment)
	o.Delivery = strings.TrimSpace(o.Delivery)
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
}
