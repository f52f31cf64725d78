package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopnest/ecommerce-api/models"
	"github.com/shopnest/ecommerce-api/validation"
)

type PaymentRepository struct {
	gw   *Gateway
	coll *mongo.Collection
}

func NewPaymentRepository(gw *Gateway) *PaymentRepository {
	return &PaymentRepository{gw: gw, coll: gw.db.Collection("payments")}
}

type PaymentPatch struct {
	Order         *string               `json:"order"`
	Amount        *float64              `json:"amount"`
	Method        *models.PaymentMethod `json:"method"`
	Status        *models.PaymentStatus `json:"status"`
	TransactionID *string               `json:"transactionID"`
}

func (p PaymentPatch) apply(pm *models.Payment) {
	if p.Order != nil {
		pm.Order = *p.Order
	}
	if p.Amount != nil {
		pm.Amount = *p.Amount
	}
	if p.Method != nil {
		pm.Method = *p.Method
	}
	if p.Status != nil {
		pm.Status = *p.Status
	}
	if p.TransactionID != nil {
		pm.TransactionID = *p.TransactionID
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	p.ID = ""
	if err := validation.Validate("payment", p); err != nil {
		return nil, err
	}
	p.ID = NewID()
	if err := r.gw.insertOne(ctx, r.coll, "payment", "", p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*models.Payment, error) {
	var p models.Payment
	if err := r.gw.findByID(ctx, r.coll, "payment", id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	payments := []models.Payment{}
	if err := r.gw.list(ctx, r.coll, "payment", &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) Update(ctx context.Context, id string, patch PaymentPatch) (*models.Payment, error) {
	var cur models.Payment
	if err := r.gw.findByID(ctx, r.coll, "payment", id, &cur); err != nil {
		return nil, err
	}
	patch.apply(&cur)
	if err := validation.Validate("payment", &cur); err != nil {
		return nil, err
	}
	if err := r.gw.replaceByID(ctx, r.coll, "payment", "", id, &cur); err != nil {
		return nil, err
	}
	return &cur, nil
}

func (r *PaymentRepository) DeleteByID(ctx context.Context, id string) error {
	return r.gw.deleteByID(ctx, r.coll, "payment", id)
}
