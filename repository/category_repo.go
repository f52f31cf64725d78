package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopnest/ecommerce-api/models"
	"github.com/shopnest/ecommerce-api/validation"
)

type CategoryRepository struct {
	gw   *Gateway
	coll *mongo.Collection
}

func NewCategoryRepository(gw *Gateway) *CategoryRepository {
	return &CategoryRepository{gw: gw, coll: gw.db.Collection("categories")}
}

type CategoryPatch struct {
	Name *string `json:"name"`
}

func (p CategoryPatch) apply(c *models.Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	c.ID = ""
	if err := validation.Validate("category", c); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	c.ID = NewID()
	c.CreatedAt, c.UpdatedAt = now, now
	if err := r.gw.insertOne(ctx, r.coll, "category", "name", c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	var c models.Category
	if err := r.gw.findByID(ctx, r.coll, "category", id, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.gw.list(ctx, r.coll, "category", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id string, patch CategoryPatch) (*models.Category, error) {
	var cur models.Category
	if err := r.gw.findByID(ctx, r.coll, "category", id, &cur); err != nil {
		return nil, err
	}
	patch.apply(&cur)
	if err := validation.Validate("category", &cur); err != nil {
		return nil, err
	}
	cur.UpdatedAt = time.Now().UTC()
	if err := r.gw.replaceByID(ctx, r.coll, "category", "name", id, &cur); err != nil {
		return nil, err
	}
	return &cur, nil
}

func (r *CategoryRepository) DeleteByID(ctx context.Context, id string) error {
	return r.gw.deleteByID(ctx, r.coll, "category", id)
}
