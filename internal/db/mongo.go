// internal/db/mongo.go
package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDB(mongoURL, dbName string) (*MongoDB, error) {
	opts := options.Client().
		ApplyURI(mongoURL).
		SetMaxPoolSize(25).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Test connection
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	log.Println("[DB] ✅ Connected to MongoDB")
	return &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}

func (db *MongoDB) Close() {
	if db.Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Client.Disconnect(ctx); err != nil {
		log.Printf("[DB] Error closing MongoDB connection: %v", err)
		return
	}
	log.Println("[DB] MongoDB connection closed")
}
