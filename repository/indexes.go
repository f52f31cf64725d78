package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes declares the uniqueness and lookup indexes the entities rely
// on. Uniqueness (admin/user email, category name) is a correctness
// constraint; the rest are query hints.
func (g *Gateway) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	// Category names collide case-insensitively.
	caseInsensitiveUnique := options.Index().
		SetUnique(true).
		SetCollation(&options.Collation{Locale: "en", Strength: 2})

	byCollection := map[string][]mongo.IndexModel{
		"admins": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		"categories": {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: caseInsensitiveUnique},
			{Keys: bson.D{{Key: "name", Value: "text"}}},
		},
		"carts": {
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "product", Value: 1}}},
		},
		"deliveries": {
			{Keys: bson.D{{Key: "order", Value: 1}, {Key: "status", Value: 1}}},
		},
	}

	for name, indexes := range byCollection {
		if _, err := g.db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return g.gatewayError("ensure-indexes", name, err)
		}
		g.log.Debug().Str("collection", name).Int("count", len(indexes)).Msg("indexes ensured")
	}
	return nil
}
