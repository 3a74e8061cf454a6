// models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles form a closed set; anything else is rejected on create/update.
const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleTechnician = "technician"
	RoleEmployee   = "employee"
)

const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       string             `bson:"userId" json:"userId"` // external identifier, unique
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	Role         string             `bson:"role" json:"role"`
	Department   string             `bson:"department,omitempty" json:"department,omitempty"`
	Position     string             `bson:"position,omitempty" json:"position,omitempty"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Status       string             `bson:"status" json:"status"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
