package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Abinet16/Mulu-Asset-Managment-template/models"
	"github.com/Abinet16/Mulu-Asset-Managment-template/utils"
	"github.com/Abinet16/Mulu-Asset-Managment-template/views"
	ws "github.com/Abinet16/Mulu-Asset-Managment-template/websocket"
)

type CreateAssetRequest struct {
	AssetID        string     `json:"assetId" validate:"required"`
	AssetName      string     `json:"assetName" validate:"required"`
	AssetType      string     `json:"assetType" validate:"required"`
	Model          string     `json:"model,omitempty"`
	SerialNumber   string     `json:"serialNumber,omitempty"`
	PurchaseDate   *time.Time `json:"purchaseDate,omitempty"`
	PurchaseCost   float64    `json:"purchaseCost,omitempty"`
	Warranty       string     `json:"warranty,omitempty"`
	WarrantyExpiry *time.Time `json:"warrantyExpiry,omitempty"`
	Location       string     `json:"location,omitempty"`
	Status         string     `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive Maintenance Retired Lost/Stolen"`
	AssignedTo     string     `json:"assignedTo,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

// ListAssets returns the asset inventory, reduced and ordered server-side
// by the search/filter/sort parameters of the list screen.
func ListAssets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := assetCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		slog.Error("asset list query failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch assets")
		return
	}
	defer cursor.Close(ctx)

	var assets []models.Asset
	if err = cursor.All(ctx, &assets); err != nil {
		slog.Error("asset list decode failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to decode assets")
		return
	}
	if assets == nil {
		assets = []models.Asset{}
	}

	q := views.ParseQuery(r.URL.Query(), "status", "location", "assetType")
	assets = views.Project(assets, q, views.AssetFields, views.AssetSearchKeys)

	utils.RespondWithJSON(w, http.StatusOK, assets)
}

func CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req CreateAssetRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	if fields := utils.ValidateStruct(req); fields != nil {
		utils.RespondWithValidationErrors(w, fields)
		return
	}

	if req.Status == "" {
		req.Status = models.AssetStatusActive
	}

	now := time.Now().UTC()
	asset := models.Asset{
		ID:             primitive.NewObjectID(),
		AssetID:        req.AssetID,
		AssetName:      req.AssetName,
		AssetType:      req.AssetType,
		Model:          req.Model,
		SerialNumber:   req.SerialNumber,
		PurchaseDate:   req.PurchaseDate,
		PurchaseCost:   req.PurchaseCost,
		Warranty:       req.Warranty,
		WarrantyExpiry: req.WarrantyExpiry,
		Location:       req.Location,
		Status:         req.Status,
		AssignedTo:     req.AssignedTo,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if _, err := assetCollection.InsertOne(ctx, asset); err != nil {
		// uniqueness on assetId is enforced by the store; racing creates
		// surface here and are never retried
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusBadRequest, "asset with this assetId already exists")
			return
		}
		slog.Error("asset insert failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to create asset")
		return
	}

	actor, _ := r.Context().Value("userID").(string)
	recordAudit(ctx, actor, "asset_create", "asset", asset.AssetID, bson.M{"assetName": asset.AssetName})
	ws.SendAssetEvent("ASSET_CREATED", asset.AssetID, asset, actor)

	utils.RespondWithJSON(w, http.StatusCreated, asset)
}

func GetAsset(w http.ResponseWriter, r *http.Request) {
	assetID := mux.Vars(r)["assetId"]
	if assetID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "asset id required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var asset models.Asset
	err := assetCollection.FindOne(ctx, bson.M{"assetId": assetID}).Decode(&asset)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "asset not found")
			return
		}
		slog.Error("asset fetch failed", "assetId", assetID, "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch asset")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, asset)
}

type UpdateAssetRequest struct {
	AssetName      *string    `json:"assetName,omitempty"`
	AssetType      *string    `json:"assetType,omitempty"`
	Model          *string    `json:"model,omitempty"`
	SerialNumber   *string    `json:"serialNumber,omitempty"`
	PurchaseDate   *time.Time `json:"purchaseDate,omitempty"`
	PurchaseCost   *float64   `json:"purchaseCost,omitempty"`
	Warranty       *string    `json:"warranty,omitempty"`
	WarrantyExpiry *time.Time `json:"warrantyExpiry,omitempty"`
	Location       *string    `json:"location,omitempty"`
	Status         *string    `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive Maintenance Retired Lost/Stolen"`
	AssignedTo     *string    `json:"assignedTo,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}

// UpdateAsset applies a partial update. The external assetId is immutable
// and not part of the request shape.
func UpdateAsset(w http.ResponseWriter, r *http.Request) {
	assetID := mux.Vars(r)["assetId"]
	if assetID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "asset id required")
		return
	}

	var req UpdateAssetRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	if fields := utils.ValidateStruct(req); fields != nil {
		utils.RespondWithValidationErrors(w, fields)
		return
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if req.AssetName != nil {
		set["assetName"] = *req.AssetName
	}
	if req.AssetType != nil {
		set["assetType"] = *req.AssetType
	}
	if req.Model != nil {
		set["model"] = *req.Model
	}
	if req.SerialNumber != nil {
		set["serialNumber"] = *req.SerialNumber
	}
	if req.PurchaseDate != nil {
		set["purchaseDate"] = *req.PurchaseDate
	}
	if req.PurchaseCost != nil {
		set["purchaseCost"] = *req.PurchaseCost
	}
	if req.Warranty != nil {
		set["warranty"] = *req.Warranty
	}
	if req.WarrantyExpiry != nil {
		set["warrantyExpiry"] = *req.WarrantyExpiry
	}
	if req.Location != nil {
		set["location"] = *req.Location
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.AssignedTo != nil {
		set["assignedTo"] = *req.AssignedTo
	}
	if req.Notes != nil {
		set["notes"] = *req.Notes
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var updated models.Asset
	err := assetCollection.FindOneAndUpdate(
		ctx,
		bson.M{"assetId": assetID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "asset not found")
			return
		}
		slog.Error("asset update failed", "assetId", assetID, "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to update asset")
		return
	}

	actor, _ := r.Context().Value("userID").(string)
	recordAudit(ctx, actor, "asset_update", "asset", updated.AssetID, bson.M{"fields": len(set) - 1})
	ws.SendAssetEvent("ASSET_UPDATED", updated.AssetID, updated, actor)

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DeleteAsset removes the asset outright; there is no soft delete.
func DeleteAsset(w http.ResponseWriter, r *http.Request) {
	assetID := mux.Vars(r)["assetId"]
	if assetID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "asset id required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := assetCollection.DeleteOne(ctx, bson.M{"assetId": assetID})
	if err != nil {
		slog.Error("asset delete failed", "assetId", assetID, "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to delete asset")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "asset not found")
		return
	}

	actor, _ := r.Context().Value("userID").(string)
	recordAudit(ctx, actor, "asset_delete", "asset", assetID, nil)
	ws.SendAssetEvent("ASSET_DELETED", assetID, nil, actor)

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Asset deleted successfully"})
}
