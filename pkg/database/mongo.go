package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const mongoConnectTimeout = 10 * time.Second

// NewMongoClient connects to MongoDB at uri using registry for BSON encoding.
// When ping is set the primary is contacted before the client is returned.
func NewMongoClient(ctx context.Context, uri string, registry *bsoncodec.Registry, ping bool) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo URI cannot be empty")
	}

	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(mongoConnectTimeout)
	if registry != nil {
		opts.SetRegistry(registry)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if ping {
		pingCtx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
		defer cancel()
		if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("failed to ping mongo: %w", err)
		}
	}

	slog.Info("MongoDB client ready", slog.Bool("pinged", ping))
	return client, nil
}

// CloseMongoClient disconnects the client, waiting up to a few seconds for in-flight operations.
func CloseMongoClient(client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		slog.Error("Failed to disconnect MongoDB client", slog.String("error", err.Error()))
		return
	}
	slog.Info("MongoDB client disconnected")
}
