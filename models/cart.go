package models

import (
	"strings"
	"time"
)

// Cart references its user and products by identifier only; the links are
// non-owning and existence is not checked here.
type Cart struct {
	ID         string    `bson:"_id,omitempty" json:"id,omitempty"`
	User       string    `bson:"user" json:"user" validate:"required,objectid"`
	Product    []string  `bson:"product" json:"product" validate:"required,min=1,dive,objectid"`
	TotalPrice float64   `bson:"totalPrice" json:"totalPrice" validate:"gte=0,money"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (c *Cart) Normalize() {
	c.User = strings.TrimSpace(c.User)
	for i := range c.Product {
		c.Product[i] = strings.TrimSpace(c.Product[i])
	}
}
