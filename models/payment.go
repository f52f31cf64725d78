package models

import "strings"

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "creditcard"
	PaymentMethodDebitCard  PaymentMethod = "debitcard"
	PaymentMethodCOD        PaymentMethod = "cod"
	PaymentMethodUPI        PaymentMethod = "upi"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment carries no timestamps; the gateway does not touch them for this
// collection.
type Payment struct {
	ID            string        `bson:"_id,omitempty" json:"id,omitempty"`
	Order         string        `bson:"order" json:"order" validate:"required,objectid"`
	Amount        float64       `bson:"amount" json:"amount" validate:"gt=0,money"`
	Method        PaymentMethod `bson:"method" json:"method" validate:"required,oneof=creditcard debitcard cod upi"`
	Status        PaymentStatus `bson:"status" json:"status" validate:"required,oneof=pending completed failed refunded"`
	TransactionID string        `bson:"transactionID" json:"transactionID" validate:"required,min=5,max=100"`
}

func (p *Payment) Normalize() {
	p.Order = strings.TrimSpace(p.Order)
	p.TransactionID = strings.TrimSpace(p.TransactionID)
	if p.Status == "" {
		p.Status = PaymentStatusPending
	}
}
