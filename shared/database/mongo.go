package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// NewMongoClient connects to MongoDB and pings the primary before returning.
// Nested documents decode into bson.M so pass-through records serialize as plain JSON objects.
func NewMongoClient(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeout).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client, nil
}

// CloseMongoClient disconnects the client, logging instead of returning the error.
func CloseMongoClient(ctx context.Context, logger *zerolog.Logger, client *mongo.Client) {
	if err := client.Disconnect(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to disconnect from MongoDB")
		return
	}

	logger.Info().Msg("disconnected from MongoDB")
}
