package models

import (
	"strings"
	"time"
)

type Category struct {
	ID        string    `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string    `bson:"name" json:"name" validate:"required,min=2,max=100"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (c *Category) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
}
