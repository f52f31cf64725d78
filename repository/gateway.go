// Package repository is the persistence gateway: per-entity repositories over
// MongoDB collections. Every write runs the validation rule set first and, for
// Admin/User, the password transform; identifiers and timestamps are assigned
// here. All operations run under a bounded timeout.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopnest/ecommerce-api/apperr"
	"github.com/shopnest/ecommerce-api/validation"
)

const defaultOpTimeout = 5 * time.Second

type Gateway struct {
	db      *mongo.Database
	log     zerolog.Logger
	timeout time.Duration
}

func New(db *mongo.Database, log zerolog.Logger) *Gateway {
	return &Gateway{
		db:      db,
		log:     log.With().Str("component", "gateway").Logger(),
		timeout: defaultOpTimeout,
	}
}

// NewID assigns a fresh 24-character hex identifier.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

func (g *Gateway) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, g.timeout)
}

func (g *Gateway) insertOne(ctx context.Context, coll *mongo.Collection, entity, uniqueField string, doc any) error {
	ctx, cancel := g.opCtx(ctx)
	defer cancel()

	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return g.writeError("insert", entity, uniqueField, err)
	}
	g.log.Debug().Str("entity", entity).Msg("document inserted")
	return nil
}

func (g *Gateway) findByID(ctx context.Context, coll *mongo.Collection, entity, id string, out any) error {
	if !validation.IsObjectID(id) {
		return validation.ReferenceError(entity, "id")
	}
	ctx, cancel := g.opCtx(ctx)
	defer cancel()

	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &apperr.NotFoundError{Entity: entity, ID: id}
	}
	if err != nil {
		return g.gatewayError("find", entity, err)
	}
	return nil
}

func (g *Gateway) replaceByID(ctx context.Context, coll *mongo.Collection, entity, uniqueField, id string, doc any) error {
	ctx, cancel := g.opCtx(ctx)
	defer cancel()

	res, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return g.writeError("replace", entity, uniqueField, err)
	}
	if res.MatchedCount == 0 {
		return &apperr.NotFoundError{Entity: entity, ID: id}
	}
	return nil
}

func (g *Gateway) deleteByID(ctx context.Context, coll *mongo.Collection, entity, id string) error {
	if !validation.IsObjectID(id) {
		return validation.ReferenceError(entity, "id")
	}
	ctx, cancel := g.opCtx(ctx)
	defer cancel()

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return g.gatewayError("delete", entity, err)
	}
	if res.DeletedCount == 0 {
		return &apperr.NotFoundError{Entity: entity, ID: id}
	}
	g.log.Debug().Str("entity", entity).Str("id", id).Msg("document deleted")
	return nil
}

func (g *Gateway) list(ctx context.Context, coll *mongo.Collection, entity string, out any) error {
	ctx, cancel := g.opCtx(ctx)
	defer cancel()

	cur, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return g.gatewayError("list", entity, err)
	}
	if err := cur.All(ctx, out); err != nil {
		return g.gatewayError("list", entity, err)
	}
	return nil
}

// writeError distinguishes uniqueness conflicts from other storage failures.
func (g *Gateway) writeError(op, entity, uniqueField string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return &apperr.ConflictError{Entity: entity, Field: uniqueField}
	}
	return g.gatewayError(op, entity, err)
}

func (g *Gateway) gatewayError(op, entity string, err error) error {
	timeout := errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err)
	g.log.Error().Err(err).Str("op", op).Str("entity", entity).Bool("timeout", timeout).Msg("storage operation failed")
	return &apperr.GatewayError{Op: op, Entity: entity, Timeout: timeout, Err: err}
}
