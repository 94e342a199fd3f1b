package infrastructure

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const mongoSelectionTimeout = 5 * time.Second

// NewMongoClient configures a client for uri. The driver connects lazily, so
// an unreachable server only shows up on the first operation or PingMongo.
// A serverSelectionTimeoutMS in uri overrides the 5s default.
func NewMongoClient(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		SetServerSelectionTimeout(mongoSelectionTimeout).
		ApplyURI(uri)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	return client, nil
}

// PingMongo checks that the primary answers within the selection timeout.
func PingMongo(ctx context.Context, client *mongo.Client) error {
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongo: %w", err)
	}
	return nil
}
