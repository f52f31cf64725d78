package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopnest/ecommerce-api/models"
	"github.com/shopnest/ecommerce-api/validation"
)

type ProductRepository struct {
	gw   *Gateway
	coll *mongo.Collection
}

func NewProductRepository(gw *Gateway) *ProductRepository {
	return &ProductRepository{gw: gw, coll: gw.db.Collection("products")}
}

type ProductPatch struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Stock       *bool    `json:"stock"`
	Phone       *string  `json:"phone"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}

func (p ProductPatch) apply(pr *models.Product) {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Price != nil {
		pr.Price = *p.Price
	}
	if p.Stock != nil {
		pr.Stock = *p.Stock
	}
	if p.Phone != nil {
		pr.Phone = *p.Phone
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.Image != nil {
		pr.Image = *p.Image
	}
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	p.ID = ""
	if err := validation.Validate("product", p); err != nil {
		return nil, err
	}
	p.ID = NewID()
	if err := r.gw.insertOne(ctx, r.coll, "product", "", p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	if err := r.gw.findByID(ctx, r.coll, "product", id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.gw.list(ctx, r.coll, "product", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, patch ProductPatch) (*models.Product, error) {
	var cur models.Product
	if err := r.gw.findByID(ctx, r.coll, "product", id, &cur); err != nil {
		return nil, err
	}
	patch.apply(&cur)
	if err := validation.Validate("product", &cur); err != nil {
		return nil, err
	}
	if err := r.gw.replaceByID(ctx, r.coll, "product", "", id, &cur); err != nil {
		return nil, err
	}
	return &cur, nil
}

func (r *ProductRepository) DeleteByID(ctx context.Context, id string) error {
	return r.gw.deleteByID(ctx, r.coll, "product", id)
}
