package utils

import "golang.org/x/crypto/bcrypt"

// DefaultHashCost matches the cost the rest of the platform was provisioned
// with.
const DefaultHashCost = 10

// HashPassword applies the one-way transform to a plaintext password.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain verifies against a stored hash.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// IsHashed reports whether the value already went through the transform.
// Guards against double-hashing when an unchanged entity is re-saved.
func IsHashed(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
