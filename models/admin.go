package models

import (
	"strings"
	"time"
)

type AdminRole string

const (
	RoleSuperAdmin AdminRole = "superadmin"
	RoleAdmin      AdminRole = "admin"
)

type Admin struct {
	ID        string    `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string    `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Email     string    `bson:"email" json:"email" validate:"required,email"`
	Password  string    `bson:"password" json:"password,omitempty" validate:"required,min=8,strongpassword"`
	Role      AdminRole `bson:"role" json:"role" validate:"required,oneof=superadmin admin"`
	Phone     string    `bson:"phone" json:"phone" validate:"required,digits,len=10"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Normalize trims string fields, lower-cases the email and applies the role
// default. Runs before the rule set.
func (a *Admin) Normalize() {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	a.Phone = strings.TrimSpace(a.Phone)
	if a.Role == "" {
		a.Role = RoleAdmin
	}
}
