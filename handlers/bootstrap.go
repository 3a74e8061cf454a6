package handlers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Abinet16/Mulu-Asset-Managment-template/models"
	"github.com/Abinet16/Mulu-Asset-Managment-template/utils"
)

// SeedAdmin creates a default admin account when the users collection is
// empty, so a fresh deployment can be logged into at all. Credentials come
// from ADMIN_EMAIL / ADMIN_PASSWORD, falling back to a generated password
// that is logged once.
func SeedAdmin() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := userCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = utils.GenerateRandomPassword(16)
		slog.Warn("seeded admin with generated password", "email", email, "password", password)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := models.User{
		ID:           primitive.NewObjectID(),
		UserID:       "ADM-001",
		Username:     "admin",
		Email:        email,
		Role:         models.RoleAdmin,
		Status:       models.UserStatusActive,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := userCollection.InsertOne(ctx, admin); err != nil {
		return err
	}

	slog.Info("seeded default admin user", "email", email)
	return nil
}
