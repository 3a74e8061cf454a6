// database/database.go
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Abinet16/Mulu-Asset-Managment-template/config"
)

var Client *mongo.Client

func Connect() error {
	mongoURI := config.MongoURI
	if mongoURI == "" {
		return fmt.Errorf("MONGODB_URI environment variable is required")
	}

	clientOptions := options.Client().
		ApplyURI(mongoURI).
		SetConnectTimeout(20 * time.Second).
		SetServerSelectionTimeout(15 * time.Second).
		SetSocketTimeout(20 * time.Second).
		SetMaxPoolSize(50)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	Client, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	ctxPing, cancelPing := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelPing()

	if err = Client.Ping(ctxPing, readpref.Primary()); err != nil {
		_ = Client.Disconnect(context.Background()) // cleanup on failure
		return fmt.Errorf("failed to ping MongoDB (connection/auth/network issue): %w", err)
	}

	slog.Info("connected to MongoDB", "database", config.DatabaseName)
	return nil
}

// EnsureIndexes creates the unique indexes uniqueness of external
// identifiers depends on. Racing creates then resolve to exactly one
// success and one duplicate-key error at the store.
func EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db := Client.Database(config.DatabaseName)

	assetIdx := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "assetId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection("assets").Indexes().CreateMany(ctx, assetIdx); err != nil {
		return fmt.Errorf("asset indexes: %w", err)
	}

	userIdx := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection("users").Indexes().CreateMany(ctx, userIdx); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}

	assignmentIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "assetId", Value: 1}}},
	}
	if _, err := db.Collection("assignments").Indexes().CreateMany(ctx, assignmentIdx); err != nil {
		return fmt.Errorf("assignment indexes: %w", err)
	}

	return nil
}

func Disconnect() {
	if Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := Client.Disconnect(ctx); err != nil {
		slog.Warn("MongoDB disconnect warning", "error", err)
	}
}
