package models

import "strings"

// Product carries no timestamps; the gateway does not touch them for this
// collection.
type Product struct {
	ID          string  `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string  `bson:"name" json:"name" validate:"required,min=2,max=200"`
	Price       float64 `bson:"price" json:"price" validate:"gt=0,money"`
	Stock       bool    `bson:"stock" json:"stock"`
	Phone       string  `bson:"phone" json:"phone" validate:"required,digits,min=10,max=12"`
	Description string  `bson:"description,omitempty" json:"description,omitempty" validate:"omitempty,max=2000"`
	Image       string  `bson:"image,omitempty" json:"image,omitempty" validate:"omitempty,url"`
}

func (p *Product) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Description = strings.TrimSpace(p.Description)
	p.Image = strings.TrimSpace(p.Image)
}
