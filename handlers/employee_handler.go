package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Abinet16/Mulu-Asset-Managment-template/models"
	"github.com/Abinet16/Mulu-Asset-Managment-template/utils"
	"github.com/Abinet16/Mulu-Asset-Managment-template/views"
)

// GetMyAssets returns the assets currently assigned to the caller. Any
// authenticated role may use it; the identity comes from the verified
// token, never from a query parameter.
func GetMyAssets(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assignments, err := fetchAssignments(ctx, bson.M{
		"userId": userID,
		"status": models.AssignmentStatusActive,
	})
	if err != nil {
		slog.Error("employee assignment query failed", "userId", userID, "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch assignments")
		return
	}

	if len(assignments) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, []views.EnrichedAssignment{})
		return
	}

	assetIDs := make([]string, 0, len(assignments))
	for _, a := range assignments {
		assetIDs = append(assetIDs, a.AssetID)
	}

	cursor, err := assetCollection.Find(ctx, bson.M{"assetId": bson.M{"$in": assetIDs}})
	if err != nil {
		slog.Error("employee asset query failed", "userId", userID, "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch assets")
		return
	}
	defer cursor.Close(ctx)

	var assets []models.Asset
	if err := cursor.All(ctx, &assets); err != nil {
		slog.Error("employee asset decode failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to decode assets")
		return
	}

	var me []models.User
	var self models.User
	if err := userCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&self); err == nil {
		me = append(me, self)
	}

	enriched := views.ResolveAssignments(assignments, me, assets)
	utils.RespondWithJSON(w, http.StatusOK, enriched)
}
