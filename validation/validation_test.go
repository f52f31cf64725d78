package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopnest/ecommerce-api/apperr"
	"github.com/shopnest/ecommerce-api/models"
)

const (
	hexID      = "507f1f77bcf86cd799439011"
	otherHexID = "507f191e810c19729de860ea"
)

func validAdmin() *models.Admin {
	return &models.Admin{
		Name:     "Store Admin",
		Email:    "admin@example.com",
		Password: "Str0ng@Pass",
		Phone:    "9876543210",
	}
}

func validProduct() *models.Product {
	return &models.Product{
		Name:  "Coffee Mug",
		Price: 10.99,
		Stock: true,
		Phone: "1234567890",
	}
}

func validOrder() *models.Order {
	return &models.Order{
		User:       hexID,
		Product:    []string{otherHexID},
		Address:    "12 Main Street",
		TotalPrice: 49.99,
		Payment:    hexID,
		Delivery:   otherHexID,
	}
}

func violations(t *testing.T, err error) map[string]apperr.FieldError {
	t.Helper()
	ve, ok := apperr.IsValidation(err)
	require.True(t, ok, "expected a ValidationError, got %v", err)
	out := make(map[string]apperr.FieldError, len(ve.Violations))
	for _, v := range ve.Violations {
		out[v.Field] = v
	}
	return out
}

func TestValidateCollectsEveryMissingField(t *testing.T) {
	err := Validate("admin", &models.Admin{})
	vs := violations(t, err)

	for _, field := range []string{"name", "email", "password", "phone"} {
		v, ok := vs[field]
		require.True(t, ok, "missing violation for %s", field)
		assert.Equal(t, apperr.CodeRequired, v.Code)
	}
	// Role is defaulted, not required from the caller.
	assert.NotContains(t, vs, "role")
}

func TestValidateOrderCollectsAllReferenceFields(t *testing.T) {
	err := Validate("order", &models.Order{})
	vs := violations(t, err)

	for _, field := range []string{"user", "product", "address", "payment", "delivery"} {
		v, ok := vs[field]
		require.True(t, ok, "missing violation for %s", field)
		assert.Equal(t, apperr.CodeRequired, v.Code)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	a := validAdmin()
	a.Email = "  Admin@EXAMPLE.com "
	a.Name = " Store Admin "

	require.NoError(t, Validate("admin", a))
	assert.Equal(t, "admin@example.com", a.Email)
	assert.Equal(t, "Store Admin", a.Name)
	assert.Equal(t, models.RoleAdmin, a.Role)

	first := *a
	require.NoError(t, Validate("admin", a))
	assert.Equal(t, first, *a)
}

func TestMoneyPrecision(t *testing.T) {
	p := validProduct()
	p.Price = 10.999
	vs := violations(t, Validate("product", p))
	require.Contains(t, vs, "price")
	assert.Equal(t, apperr.CodePrecision, vs["price"].Code)

	p = validProduct()
	p.Price = 10.99
	assert.NoError(t, Validate("product", p))

	p = validProduct()
	p.Price = -1
	vs = violations(t, Validate("product", p))
	require.Contains(t, vs, "price")
	assert.Equal(t, apperr.CodeRange, vs["price"].Code)
}

func TestPaymentAmountPrecision(t *testing.T) {
	pay := &models.Payment{
		Order:         hexID,
		Amount:        25.001,
		Method:        models.PaymentMethodUPI,
		TransactionID: "TXN-12345",
	}
	vs := violations(t, Validate("payment", pay))
	require.Contains(t, vs, "amount")
	assert.Equal(t, apperr.CodePrecision, vs["amount"].Code)

	pay.Amount = 25.0
	assert.NoError(t, Validate("payment", pay))
	assert.Equal(t, models.PaymentStatusPending, pay.Status)
}

func TestOrderStatusEnum(t *testing.T) {
	o := validOrder()
	o.Status = "archived"
	vs := violations(t, Validate("order", o))
	require.Contains(t, vs, "status")
	assert.Equal(t, apperr.CodeEnum, vs["status"].Code)
	assert.Contains(t, vs["status"].Message, "archived")

	o = validOrder()
	require.NoError(t, Validate("order", o))
	assert.Equal(t, models.OrderStatusPending, o.Status)
}

func TestPaymentMethodEnum(t *testing.T) {
	pay := &models.Payment{
		Order:         hexID,
		Amount:        10,
		Method:        "bitcoin",
		TransactionID: "TXN-12345",
	}
	vs := violations(t, Validate("payment", pay))
	require.Contains(t, vs, "method")
	assert.Equal(t, apperr.CodeEnum, vs["method"].Code)
}

func TestReferenceShape(t *testing.T) {
	cases := []struct {
		name string
		id   string
		ok   bool
	}{
		{"valid", hexID, true},
		{"too short", hexID[:23], false},
		{"not hex", "507f1f77bcf86cd79943901g", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, IsObjectID(tc.id))

			cart := &models.Cart{User: tc.id, Product: []string{hexID}, TotalPrice: 5}
			err := Validate("cart", cart)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			vs := violations(t, err)
			require.Contains(t, vs, "user")
			if tc.id != "" {
				assert.Equal(t, apperr.CodeReference, vs["user"].Code)
			}
		})
	}
}

func TestCartProductListNonEmpty(t *testing.T) {
	cart := &models.Cart{User: hexID, Product: []string{}, TotalPrice: 0}
	vs := violations(t, Validate("cart", cart))
	require.Contains(t, vs, "product")

	cart.Product = []string{otherHexID}
	assert.NoError(t, Validate("cart", cart))
}

func TestCartTotalPriceAllowsZero(t *testing.T) {
	cart := &models.Cart{User: hexID, Product: []string{otherHexID}, TotalPrice: 0}
	assert.NoError(t, Validate("cart", cart))

	cart.TotalPrice = -0.01
	vs := violations(t, Validate("cart", cart))
	require.Contains(t, vs, "totalPrice")
	assert.Equal(t, apperr.CodeRange, vs["totalPrice"].Code)
}

func TestPhoneRules(t *testing.T) {
	a := validAdmin()
	a.Phone = "12345"
	vs := violations(t, Validate("admin", a))
	require.Contains(t, vs, "phone")
	assert.Equal(t, apperr.CodeRange, vs["phone"].Code)

	a.Phone = "98765abcde"
	vs = violations(t, Validate("admin", a))
	require.Contains(t, vs, "phone")
	assert.Equal(t, apperr.CodePattern, vs["phone"].Code)

	p := validProduct()
	p.Phone = "123456789012"
	assert.NoError(t, Validate("product", p))
	p.Phone = "1234567890123"
	vs = violations(t, Validate("product", p))
	require.Contains(t, vs, "phone")
}

func TestPasswordComplexity(t *testing.T) {
	weak := []string{
		"password",      // no upper, digit or special
		"PASSWORD1@",    // no lower
		"Passw0rd",      // no special
		"Pa1@",          // too short
		"Str0ng@Pass#x", // '#' outside the allowed set
	}
	for _, pw := range weak {
		a := validAdmin()
		a.Password = pw
		vs := violations(t, Validate("admin", a))
		require.Contains(t, vs, "password", "password %q should be rejected", pw)
	}

	a := validAdmin()
	a.Password = "G00d&Secret"
	assert.NoError(t, Validate("admin", a))
}

func TestValidateExceptSkipsStoredHash(t *testing.T) {
	a := validAdmin()
	// A bcrypt hash fails the plaintext password rules ('/' and '.' are
	// outside the allowed character set).
	a.Password = "$2a$10$N9qo8uLOickgx2ZMRZoMye.IjZAgcfl7p92ldGxad68LJZdL17lhW"
	require.Error(t, Validate("admin", a))
	assert.NoError(t, ValidateExcept("admin", a, "Password"))
}

func TestUserAddressFieldsOptional(t *testing.T) {
	u := &models.User{
		Name:     "Jane Customer",
		Email:    "jane@example.com",
		Password: "Str0ng@Pass",
		Phone:    "9876543210",
		Address: []models.Address{
			{City: "Springfield"},
			{State: "IL", Zip: "62704"},
		},
	}
	assert.NoError(t, Validate("user", u))

	u.Address = append(u.Address, models.Address{Zip: "not-a-zip"})
	vs := violations(t, Validate("user", u))
	require.Len(t, vs, 1)
}

func TestDeliveryRules(t *testing.T) {
	d := &models.Delivery{
		Order:                 hexID,
		DeliveryBoy:           "Ramesh Kumar",
		TrackingURL:           "https://track.example.com/abc",
		EstimatedDeliveryTime: 48,
	}
	require.NoError(t, Validate("delivery", d))
	assert.Equal(t, models.DeliveryStatusPending, d.Status)

	d.TrackingURL = "not a url"
	vs := violations(t, Validate("delivery", d))
	require.Contains(t, vs, "trackingURL")
	assert.Equal(t, apperr.CodePattern, vs["trackingURL"].Code)

	d.TrackingURL = ""
	d.EstimatedDeliveryTime = -1
	vs = violations(t, Validate("delivery", d))
	require.Contains(t, vs, "estimatedDeliveryTime")
}

func TestCategoryNameLength(t *testing.T) {
	c := &models.Category{Name: "x"}
	vs := violations(t, Validate("category", c))
	require.Contains(t, vs, "name")
	assert.Equal(t, apperr.CodeRange, vs["name"].Code)

	c.Name = "  Electronics  "
	require.NoError(t, Validate("category", c))
	assert.Equal(t, "Electronics", c.Name)
}

func TestTransactionIDLength(t *testing.T) {
	pay := &models.Payment{
		Order:         hexID,
		Amount:        10,
		Method:        models.PaymentMethodCOD,
		TransactionID: "abc",
	}
	vs := violations(t, Validate("payment", pay))
	require.Contains(t, vs, "transactionID")
	assert.Equal(t, apperr.CodeRange, vs["transactionID"].Code)
}
