// models/asset.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Asset statuses as shown in the inventory screens.
const (
	AssetStatusActive      = "Active"
	AssetStatusInactive    = "Inactive"
	AssetStatusMaintenance = "Maintenance"
	AssetStatusRetired     = "Retired"
	AssetStatusLostStolen  = "Lost/Stolen"
)

type Asset struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssetID        string             `bson:"assetId" json:"assetId"` // external identifier, unique, immutable
	AssetName      string             `bson:"assetName" json:"assetName"`
	AssetType      string             `bson:"assetType" json:"assetType"`
	Model          string             `bson:"model,omitempty" json:"model,omitempty"`
	SerialNumber   string             `bson:"serialNumber,omitempty" json:"serialNumber,omitempty"`
	PurchaseDate   *time.Time         `bson:"purchaseDate,omitempty" json:"purchaseDate,omitempty"`
	PurchaseCost   float64            `bson:"purchaseCost,omitempty" json:"purchaseCost,omitempty"`
	Warranty       string             `bson:"warranty,omitempty" json:"warranty,omitempty"`
	WarrantyExpiry *time.Time         `bson:"warrantyExpiry,omitempty" json:"warrantyExpiry,omitempty"`
	Location       string             `bson:"location,omitempty" json:"location,omitempty"`
	Status         string             `bson:"status" json:"status"`
	AssignedTo     string             `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
