// Package validation runs the per-entity rule set declared as tags on the
// model structs. It is the single source of constraints: both the pre-write
// check and the HTTP boundary call into it. Violations are collected across
// all fields, never just the first.
package validation

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shopnest/ecommerce-api/apperr"
)

// Normalizer is implemented by every entity: trims strings, lower-cases the
// email and applies defaults before the constraints run.
type Normalizer interface {
	Normalize()
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the json field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	must := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	must("money", validMoney)
	must("objectid", validObjectID)
	must("digits", validDigits)
	must("strongpassword", validStrongPassword)
	return v
}

// Validate normalizes the candidate and checks every rule. A non-nil return
// is always a *apperr.ValidationError carrying the full violation list.
func Validate(entity string, candidate Normalizer) error {
	candidate.Normalize()
	return translate(entity, validate.Struct(candidate))
}

// ValidateExcept behaves like Validate but skips the named struct fields.
// The update path uses it to keep an already-hashed password out of the
// plaintext password rules when the password did not change.
func ValidateExcept(entity string, candidate Normalizer, fields ...string) error {
	candidate.Normalize()
	return translate(entity, validate.StructExcept(candidate, fields...))
}

// ReferenceError builds the shape violation for a malformed identifier, the
// same one the objectid rule produces for a reference field.
func ReferenceError(entity, field string) *apperr.ValidationError {
	return &apperr.ValidationError{
		Entity: entity,
		Violations: []apperr.FieldError{{
			Field:   field,
			Code:    apperr.CodeReference,
			Message: field + " must be a 24-character hex identifier",
		}},
	}
}

// IsObjectID reports whether s has the 24-character hexadecimal identifier
// shape. Shape only; existence is a separate concern.
func IsObjectID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}

func translate(entity string, err error) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-struct input is a programming error, not a payload problem.
		return fmt.Errorf("validate %s: %w", entity, err)
	}
	out := &apperr.ValidationError{Entity: entity}
	for _, fe := range verrs {
		out.Violations = append(out.Violations, fieldError(fe))
	}
	return out
}

func fieldError(fe validator.FieldError) apperr.FieldError {
	field := fe.Field()
	code := apperr.CodePattern
	var msg string

	switch fe.Tag() {
	case "required":
		code = apperr.CodeRequired
		msg = field + " is required"
	case "oneof":
		code = apperr.CodeEnum
		msg = fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fmt.Sprintf("%v", fe.Value()))
	case "money":
		code = apperr.CodePrecision
		msg = field + " must have at most 2 decimal places"
	case "objectid":
		code = apperr.CodeReference
		msg = field + " must be a 24-character hex identifier"
	case "email":
		msg = field + " must be a valid email address"
	case "url":
		msg = field + " must be a valid URL"
	case "digits":
		msg = field + " must contain only digits"
	case "strongpassword":
		msg = field + " must include uppercase, lowercase, number and special character"
	case "len":
		code = apperr.CodeRange
		msg = fmt.Sprintf("%s must be exactly %s characters long", field, fe.Param())
	case "min":
		code = apperr.CodeRange
		msg = boundMessage(fe, "at least")
	case "max":
		code = apperr.CodeRange
		msg = boundMessage(fe, "at most")
	case "gt":
		code = apperr.CodeRange
		msg = fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		code = apperr.CodeRange
		msg = fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	default:
		msg = field + " is invalid"
	}
	return apperr.FieldError{Field: field, Code: code, Message: msg}
}

func boundMessage(fe validator.FieldError, bound string) string {
	switch fe.Kind() {
	case reflect.String:
		return fmt.Sprintf("%s must be %s %s characters long", fe.Field(), bound, fe.Param())
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("%s must contain %s %s items", fe.Field(), bound, fe.Param())
	default:
		return fmt.Sprintf("%s must be %s %s", fe.Field(), bound, fe.Param())
	}
}

// validMoney accepts currency values representable with at most two decimal
// digits. Values with more precision are rejected, not rounded.
func validMoney(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	d := decimal.NewFromFloat(f)
	return d.Equal(d.Round(2))
}

func validObjectID(fl validator.FieldLevel) bool {
	return IsObjectID(fl.Field().String())
}

func validDigits(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// validStrongPassword mirrors the boundary rule for Admin/User passwords:
// only letters, digits and @$!%*?&, with at least one of each class.
func validStrongPassword(fl validator.FieldLevel) bool {
	var lower, upper, digit, special bool
	for _, r := range fl.Field().String() {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("@$!%*?&", r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}
