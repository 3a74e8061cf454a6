package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Abinet16/Mulu-Asset-Managment-template/models"
	"github.com/Abinet16/Mulu-Asset-Managment-template/utils"
)

type DashboardStats struct {
	TotalAssets       int64            `json:"totalAssets"`
	AssetsByStatus    map[string]int64 `json:"assetsByStatus"`
	TotalUsers        int64            `json:"totalUsers"`
	TotalAssignments  int64            `json:"totalAssignments"`
	ActiveAssignments int64            `json:"activeAssignments"`
}

// GetDashboardStats aggregates the counts shown on the admin dashboard.
func GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	stats := DashboardStats{AssetsByStatus: map[string]int64{}}

	var err error
	stats.TotalAssets, err = assetCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		slog.Error("dashboard asset count failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	statuses := []string{
		models.AssetStatusActive,
		models.AssetStatusInactive,
		models.AssetStatusMaintenance,
		models.AssetStatusRetired,
		models.AssetStatusLostStolen,
	}
	for _, status := range statuses {
		count, err := assetCollection.CountDocuments(ctx, bson.M{"status": status})
		if err != nil {
			slog.Error("dashboard status count failed", "status", status, "error", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "failed to compute stats")
			return
		}
		stats.AssetsByStatus[status] = count
	}

	stats.TotalUsers, err = userCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		slog.Error("dashboard user count failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	stats.TotalAssignments, err = assignmentCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		slog.Error("dashboard assignment count failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	stats.ActiveAssignments, err = assignmentCollection.CountDocuments(ctx, bson.M{"status": models.AssignmentStatusActive})
	if err != nil {
		slog.Error("dashboard active assignment count failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, stats)
}
