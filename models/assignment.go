package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AssignmentStatusActive   = "active"
	AssignmentStatusReturned = "returned"
)

// Assignment links a user to an asset for a period of time. One document
// per assignment event; the same pair may recur over time.
type Assignment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         string             `bson:"userId" json:"userId"`   // external user identifier
	AssetID        string             `bson:"assetId" json:"assetId"` // external asset identifier
	AssignmentDate time.Time          `bson:"assignmentDate" json:"assignmentDate"`
	DueDate        *time.Time         `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Status         string             `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
