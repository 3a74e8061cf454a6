// handlers/collections.go
package handlers

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Abinet16/Mulu-Asset-Managment-template/config"
	"github.com/Abinet16/Mulu-Asset-Managment-template/database"
)

var (
	assetCollection      *mongo.Collection
	userCollection       *mongo.Collection
	assignmentCollection *mongo.Collection
	auditCollection      *mongo.Collection
)

func InitCollections() {
	db := database.Client.Database(config.DatabaseName)
	assetCollection = db.Collection("assets")
	userCollection = db.Collection("users")
	assignmentCollection = db.Collection("assignments")
	auditCollection = db.Collection("audit_logs")
}
