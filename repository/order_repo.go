package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopnest/ecommerce-api/models"
	"github.com/shopnest/ecommerce-api/validation"
)

type OrderRepository struct {
	gw   *Gateway
	coll *mongo.Collection
}

func NewOrderRepository(gw *Gateway) *OrderRepository {
	return &OrderRepository{gw: gw, coll: gw.db.Collection("orders")}
}

type OrderPatch struct {
	User       *string             `json:"user"`
	Product    *[]string           `json:"product"`
	Address    *string             `json:"address"`
	TotalPrice *float64            `json:"totalPrice"`
	Status     *models.OrderStatus `json:"status"`
	Payment    *string             `json:"payment"`
	Delivery   *string             `json:"delivery"`
}

func (p OrderPatch) apply(o *models.Order) {
	if p.User != nil {
		o.User = *p.User
	}
	if p.Product != nil {
		o.Product = *p.Product
	}
	if p.Address != nil {
		o.Address = *p.Address
	}
	if p.TotalPrice != nil {
		o.TotalPrice = *p.TotalPrice
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Payment != nil {
		o.Payment = *p.Payment
	}
	if p.Delivery != nil {
		o.Delivery = *p.Delivery
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *models.Order) (*models.Order, error) {
	o.ID = ""
	if err := validation.Validate("order", o); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	o.ID = NewID()
	o.CreatedAt, o.UpdatedAt = now, now
	if err := r.gw.insertOne(ctx, r.coll, "order", "", o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	if err := r.gw.findByID(ctx, r.coll, "order", id, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.gw.list(ctx, r.coll, "order", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) Update(ctx context.Context, id string, patch OrderPatch) (*models.Order, error) {
	var cur models.Order
	if err := r.gw.findByID(ctx, r.coll, "order", id, &cur); err != nil {
		return nil, err
	}
	patch.apply(&cur)
	if err := validation.Validate("order", &cur); err != nil {
		return nil, err
	}
	cur.UpdatedAt = time.Now().UTC()
	if err := r.gw.replaceByID(ctx, r.coll, "order", "", id, &cur); err != nil {
		return nil, err
	}
	return &cur, nil
}

func (r *OrderRepository) DeleteByID(ctx context.Context, id string) error {
	return r.gw.deleteByID(ctx, r.coll, "order", id)
}
