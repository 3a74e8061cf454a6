package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Abinet16/Mulu-Asset-Managment-template/models"
	"github.com/Abinet16/Mulu-Asset-Managment-template/utils"
)

// recordAudit inserts an audit entry for a mutating operation. Audit
// failures are logged and swallowed; they never fail the request.
func recordAudit(ctx context.Context, actor, action, entityType, entityID string, details bson.M) {
	entry := models.AuditLog{
		ID:         primitive.NewObjectID(),
		Actor:      actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := auditCollection.InsertOne(ctx, entry); err != nil {
		slog.Warn("audit insert failed", "action", action, "error", err)
	}
}

// ListAuditLogs returns the most recent audit entries, newest first.
func ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(200)

	cursor, err := auditCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		slog.Error("audit list query failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch audit logs")
		return
	}
	defer cursor.Close(ctx)

	var logs []models.AuditLog
	if err := cursor.All(ctx, &logs); err != nil {
		slog.Error("audit list decode failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to decode audit logs")
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	utils.RespondWithJSON(w, http.StatusOK, logs)
}
