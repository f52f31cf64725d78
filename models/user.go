package models

import (
	"strings"
	"time"
)

// Address is embedded in User; every field is independently optional.
type Address struct {
	State   string `bson:"state,omitempty" json:"state,omitempty" validate:"omitempty,max=100"`
	Zip     string `bson:"zip,omitempty" json:"zip,omitempty" validate:"omitempty,digits"`
	City    string `bson:"city,omitempty" json:"city,omitempty" validate:"omitempty,max=100"`
	Address string `bson:"address,omitempty" json:"address,omitempty" validate:"omitempty,max=500"`
}

type User struct {
	ID        string    `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string    `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Email     string    `bson:"email" json:"email" validate:"required,email"`
	Password  string    `bson:"password" json:"password,omitempty" validate:"required,min=8,strongpassword"`
	Phone     string    `bson:"phone" json:"phone" validate:"required,digits,len=10"`
	Address   []Address `bson:"address,omitempty" json:"address,omitempty" validate:"omitempty,dive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Phone = strings.TrimSpace(u.Phone)
	for i := range u.Address {
		u.Address[i].State = strings.TrimSpace(u.Address[i].State)
		u.Address[i].Zip = strings.TrimSpace(u.Address[i].Zip)
		u.Address[i].City = strings.TrimSpace(u.Address[i].City)
		u.Address[i].Address = strings.TrimSpace(u.Address[i].Address)
	}
}
