package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopnest/ecommerce-api/models"
	"github.com/shopnest/ecommerce-api/validation"
)

type CartRepository struct {
	gw   *Gateway
	coll *mongo.Collection
}

func NewCartRepository(gw *Gateway) *CartRepository {
	return &CartRepository{gw: gw, coll: gw.db.Collection("carts")}
}

type CartPatch struct {
	User       *string   `json:"user"`
	Product    *[]string `json:"product"`
	TotalPrice *float64  `json:"totalPrice"`
}

func (p CartPatch) apply(c *models.Cart) {
	if p.User != nil {
		c.User = *p.User
	}
	if p.Product != nil {
		c.Product = *p.Product
	}
	if p.TotalPrice != nil {
		c.TotalPrice = *p.TotalPrice
	}
}

func (r *CartRepository) Create(ctx context.Context, c *models.Cart) (*models.Cart, error) {
	c.ID = ""
	if err := validation.Validate("cart", c); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	c.ID = NewID()
	c.CreatedAt, c.UpdatedAt = now, now
	if err := r.gw.insertOne(ctx, r.coll, "cart", "", c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CartRepository) FindByID(ctx context.Context, id string) (*models.Cart, error) {
	var c models.Cart
	if err := r.gw.findByID(ctx, r.coll, "cart", id, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) List(ctx context.Context) ([]models.Cart, error) {
	carts := []models.Cart{}
	if err := r.gw.list(ctx, r.coll, "cart", &carts); err != nil {
		return nil, err
	}
	return carts, nil
}

func (r *CartRepository) Update(ctx context.Context, id string, patch CartPatch) (*models.Cart, error) {
	var cur models.Cart
	if err := r.gw.findByID(ctx, r.coll, "cart", id, &cur); err != nil {
		return nil, err
	}
	patch.apply(&cur)
	if err := validation.Validate("cart", &cur); err != nil {
		return nil, err
	}
	cur.UpdatedAt = time.Now().UTC()
	if err := r.gw.replaceByID(ctx, r.coll, "cart", "", id, &cur); err != nil {
		return nil, err
	}
	return &cur, nil
}

func (r *CartRepository) DeleteByID(ctx context.Context, id string) error {
	return r.gw.deleteByID(ctx, r.coll, "cart", id)
}
