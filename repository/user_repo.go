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

type UserRepository struct {
	gw   *Gateway
	coll *mongo.Collection
}

func NewUserRepository(gw *Gateway) *UserRepository {
	return &UserRepository{gw: gw, coll: gw.db.Collection("users")}
}

type UserPatch struct {
	Name     *string           `json:"name"`
	Email    *string           `json:"email"`
	Password *string           `json:"password"`
	Phone    *string           `json:"phone"`
	Address  *[]models.Address `json:"address"`
}

func (p UserPatch) apply(u *models.User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) (*models.User, error) {
	u.ID = ""
	if err := validation.Validate("user", u); err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(u.Password)
	if err != nil {
		return nil, &apperr.TransformError{Err: err}
	}
	u.Password = hash

	now := time.Now().UTC()
	u.ID = NewID()
	u.CreatedAt, u.UpdatedAt = now, now
	if err := r.gw.insertOne(ctx, r.coll, "user", "email", u); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.gw.findByID(ctx, r.coll, "user", id, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.gw.list(ctx, r.coll, "user", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, patch UserPatch) (*models.User, error) {
	var cur models.User
	if err := r.gw.findByID(ctx, r.coll, "user", id, &cur); err != nil {
		return nil, err
	}

	stored := cur.Password
	changed := patch.Password != nil && !utils.CheckPassword(stored, *patch.Password)
	patch.apply(&cur)

	if changed {
		if err := validation.Validate("user", &cur); err != nil {
			return nil, err
		}
		hash, err := utils.HashPassword(cur.Password)
		if err != nil {
			return nil, &apperr.TransformError{Err: err}
		}
		cur.Password = hash
	} else {
		cur.Password = stored
		if err := validation.ValidateExcept("user", &cur, "Password"); err != nil {
			return nil, err
		}
	}

	cur.UpdatedAt = time.Now().UTC()
	if err := r.gw.replaceByID(ctx, r.coll, "user", "email", id, &cur); err != nil {
		return nil, err
	}
	return &cur, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id string) error {
	return r.gw.deleteByID(ctx, r.coll, "user", id)
}
