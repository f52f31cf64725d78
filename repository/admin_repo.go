package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopnest/ecommerce-api/apperr"
	"github.com/shopnest/ecommerce-api/models"
	"github.com/shopnest/ecommerce-api/utils"
	"github.com/shopnest/ecommerce-api/validation"
)

type AdminRepository struct {
	gw   *Gateway
	coll *mongo.Collection
}

func NewAdminRepository(gw *Gateway) *AdminRepository {
	return &AdminRepository{gw: gw, coll: gw.db.Collection("admins")}
}

// AdminPatch is a partial update; nil fields keep their stored value.
type AdminPatch struct {
	Name     *string           `json:"name"`
	Email    *string           `json:"email"`
	Password *string           `json:"password"`
	Role     *models.AdminRole `json:"role"`
	Phone    *string           `json:"phone"`
}

func (p AdminPatch) apply(a *models.Admin) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.Password != nil {
		a.Password = *p.Password
	}
	if p.Role != nil {
		a.Role = *p.Role
	}
	if p.Phone != nil {
		a.Phone = *p.Phone
	}
}

// Create validates the candidate, hashes the password and writes the
// document. A hashing failure aborts the write; the plaintext is never
// stored.
func (r *AdminRepository) Create(ctx context.Context, a *models.Admin) (*models.Admin, error) {
	a.ID = ""
	if err := validation.Validate("admin", a); err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(a.Password)
	if err != nil {
		return nil, &apperr.TransformError{Err: err}
	}
	a.Password = hash

	now := time.Now().UTC()
	a.ID = NewID()
	a.CreatedAt, a.UpdatedAt = now, now
	if err := r.gw.insertOne(ctx, r.coll, "admin", "email", a); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	var a models.Admin
	if err := r.gw.findByID(ctx, r.coll, "admin", id, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) List(ctx context.Context) ([]models.Admin, error) {
	admins := []models.Admin{}
	if err := r.gw.list(ctx, r.coll, "admin", &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

// Update loads the stored document, applies the patch and re-validates the
// merged candidate. The password is re-hashed only when the patch actually
// changes it; re-saving with the same or no password keeps the stored hash.
func (r *AdminRepository) Update(ctx context.Context, id string, patch AdminPatch) (*models.Admin, error) {
	var cur models.Admin
	if err := r.gw.findByID(ctx, r.coll, "admin", id, &cur); err != nil {
		return nil, err
	}

	stored := cur.Password
	changed := patch.Password != nil && !utils.CheckPassword(stored, *patch.Password)
	patch.apply(&cur)

	if changed {
		if err := validation.Validate("admin", &cur); err != nil {
			return nil, err
		}
		hash, err := utils.HashPassword(cur.Password)
		if err != nil {
			return nil, &apperr.TransformError{Err: err}
		}
		cur.Password = hash
	} else {
		cur.Password = stored
		if err := validation.ValidateExcept("admin", &cur, "Password"); err != nil {
			return nil, err
		}
	}

	cur.UpdatedAt = time.Now().UTC()
	if err := r.gw.replaceByID(ctx, r.coll, "admin", "email", id, &cur); err != nil {
		return nil, err
	}
	return &cur, nil
}

func (r *AdminRepository) DeleteByID(ctx context.Context, id string) error {
	return r.gw.deleteByID(ctx, r.coll, "admin", id)
}
