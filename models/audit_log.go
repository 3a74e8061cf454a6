// models/audit_log.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuditLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Actor      string             `bson:"actor" json:"actor"`   // external userId of the caller
	Action     string             `bson:"action" json:"action"` // e.g. "asset_create", "user_delete"
	EntityType string             `bson:"entityType" json:"entityType"`
	EntityID   string             `bson:"entityId,omitempty" json:"entityId,omitempty"`
	Details    bson.M             `bson:"details,omitempty" json:"details,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
