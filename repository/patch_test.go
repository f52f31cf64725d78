package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopnest/ecommerce-api/models"
	"github.com/shopnest/ecommerce-api/validation"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool      { return &b }

func TestNewIDShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.True(t, validation.IsObjectID(id), "generated id %q is not a 24-char hex identifier", id)
		assert.False(t, seen[id], "generated id %q repeated", id)
		seen[id] = true
	}
}

func TestUserPatchAppliesOnlyProvidedFields(t *testing.T) {
	cur := models.User{
		Name:     "Jane Customer",
		Email:    "jane@example.com",
		Password: "stored-hash",
		Phone:    "9876543210",
		Address:  []models.Address{{City: "Springfield"}},
	}

	patch := UserPatch{Phone: strPtr("0123456789")}
	patch.apply(&cur)

	assert.Equal(t, "0123456789", cur.Phone)
	assert.Equal(t, "Jane Customer", cur.Name)
	assert.Equal(t, "jane@example.com", cur.Email)
	assert.Equal(t, "stored-hash", cur.Password)
	assert.Len(t, cur.Address, 1)
}

func TestAdminPatchReplacesRole(t *testing.T) {
	cur := models.Admin{Name: "Store Admin", Role: models.RoleAdmin}
	role := models.RoleSuperAdmin
	AdminPatch{Role: &role}.apply(&cur)
	assert.Equal(t, models.RoleSuperAdmin, cur.Role)
	assert.Equal(t, "Store Admin", cur.Name)
}

func TestProductPatchCanClearOptionalFields(t *testing.T) {
	cur := models.Product{
		Name:        "Coffee Mug",
		Price:       10.99,
		Stock:       true,
		Phone:       "1234567890",
		Description: "ceramic",
		Image:       "https://cdn.example.com/mug.png",
	}

	patch := ProductPatch{
		Price:       f64Ptr(12.50),
		Stock:       boolPtr(false),
		Description: strPtr(""),
		Image:       strPtr(""),
	}
	patch.apply(&cur)

	assert.Equal(t, 12.50, cur.Price)
	assert.False(t, cur.Stock)
	assert.Empty(t, cur.Description)
	assert.Empty(t, cur.Image)
	assert.Equal(t, "Coffee Mug", cur.Name)
}

func TestOrderPatchStatusTransition(t *testing.T) {
	cur := models.Order{Status: models.OrderStatusPending, TotalPrice: 49.99}
	status := models.OrderStatusShipped
	OrderPatch{Status: &status}.apply(&cur)
	assert.Equal(t, models.OrderStatusShipped, cur.Status)
	assert.Equal(t, 49.99, cur.TotalPrice)
}

func TestCartPatchReplacesProductList(t *testing.T) {
	cur := models.Cart{Product: []string{"a", "b"}}
	next := []string{"c"}
	CartPatch{Product: &next}.apply(&cur)
	assert.Equal(t, []string{"c"}, cur.Product)
}
