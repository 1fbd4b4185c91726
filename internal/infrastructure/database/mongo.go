package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stories-backend/internal/config"
)

// MongoDB wraps the driver client and owns its lifecycle: opened once
// at boot, closed on shutdown. The driver maintains the connection
// pool internally; application code never manages sockets.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Config   *config.DatabaseConfig
}

// NewMongoDB connects to MongoDB with bounded retry and verifies the
// connection with a ping. A failure after all retries is returned to
// the caller, which treats it as fatal at boot.
func NewMongoDB(ctx context.Context, cfg *config.DatabaseConfig) (*MongoDB, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize)

	var client *mongo.Client
	var err error

	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		client, err = connect(ctx, opts, cfg.ConnectTimeout)
		if err == nil {
			break
		}

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_retries", cfg.MaxRetries).
			Msg("MongoDB connection failed, retrying")

		if attempt < cfg.MaxRetries {
			select {
			case <-time.After(cfg.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB after %d attempts: %w", cfg.MaxRetries, err)
	}

	db := &MongoDB{
		Client:   client,
		Database: client.Database(cfg.Database),
		Config:   cfg,
	}

	log.Info().Str("database", cfg.Database).Msg("Connected to MongoDB")
	return db, nil
}

func connect(ctx context.Context, opts *options.ClientOptions, timeout time.Duration) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, err
	}

	// Connect is lazy; ping to prove the server is actually reachable.
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

// HealthCheck pings the server.
func (db *MongoDB) HealthCheck(ctx context.Context) error {
	return db.Client.Ping(ctx, nil)
}

// Close disconnects the client. Called once during graceful shutdown.
func (db *MongoDB) Close(ctx context.Context) error {
	log.Info().Msg("Closing MongoDB connection")
	return db.Client.Disconnect(ctx)
}

// EnsureStoryIndexes creates the indexes the story collection relies
// on. The unique slug index is load-bearing: it is the real uniqueness
// guarantee behind the slug resolver's optimistic pre-check.
func (db *MongoDB) EnsureStoryIndexes(ctx context.Context) error {
	coll := db.Database.Collection("stories")

	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "publishedAt", Value: -1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create story indexes: %w", err)
	}

	return nil
}
