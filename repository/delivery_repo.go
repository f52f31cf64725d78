package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopnest/ecommerce-api/models"
	"github.com/shopnest/ecommerce-api/validation"
)

type DeliveryRepository struct {
	gw   *Gateway
	coll *mongo.Collection
}

func NewDeliveryRepository(gw *Gateway) *DeliveryRepository {
	return &DeliveryRepository{gw: gw, coll: gw.db.Collection("deliveries")}
}

type DeliveryPatch struct {
	Order                 *string                `json:"order"`
	DeliveryBoy           *string                `json:"deliveryBoy"`
	Status                *models.DeliveryStatus `json:"status"`
	TrackingURL           *string                `json:"trackingURL"`
	EstimatedDeliveryTime *float64               `json:"estimatedDeliveryTime"`
}

func (p DeliveryPatch) apply(d *models.Delivery) {
	if p.Order != nil {
		d.Order = *p.Order
	}
	if p.DeliveryBoy != nil {
		d.DeliveryBoy = *p.DeliveryBoy
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.TrackingURL != nil {
		d.TrackingURL = *p.TrackingURL
	}
	if p.EstimatedDeliveryTime != nil {
		d.EstimatedDeliveryTime = *p.EstimatedDeliveryTime
	}
}

func (r *DeliveryRepository) Create(ctx context.Context, d *models.Delivery) (*models.Delivery, error) {
	d.ID = ""
	if err := validation.Validate("delivery", d); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	d.ID = NewID()
	d.CreatedAt, d.UpdatedAt = now, now
	if err := r.gw.insertOne(ctx, r.coll, "delivery", "", d); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *DeliveryRepository) FindByID(ctx context.Context, id string) (*models.Delivery, error) {
	var d models.Delivery
	if err := r.gw.findByID(ctx, r.coll, "delivery", id, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeliveryRepository) List(ctx context.Context) ([]models.Delivery, error) {
	deliveries := []models.Delivery{}
	if err := r.gw.list(ctx, r.coll, "delivery", &deliveries); err != nil {
		return nil, err
	}
	return deliveries, nil
}

func (r *DeliveryRepository) Update(ctx context.Context, id string, patch DeliveryPatch) (*models.Delivery, error) {
	var cur models.Delivery
	if err := r.gw.findByID(ctx, r.coll, "delivery", id, &cur); err != nil {
		return nil, err
	}
	patch.apply(&cur)
	if err := validation.Validate("delivery", &cur); err != nil {
		return nil, err
	}
	cur.UpdatedAt = time.Now().UTC()
	if err := r.gw.replaceByID(ctx, r.coll, "delivery", "", id, &cur); err != nil {
		return nil, err
	}
	return &cur, nil
}

func (r *DeliveryRepository) DeleteByID(ctx context.Context, id string) error {
	return r.gw.deleteByID(ctx, r.coll, "delivery", id)
}
