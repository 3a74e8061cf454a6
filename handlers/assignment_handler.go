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

type CreateAssignmentRequest struct {
	UserID         string     `json:"userId" validate:"required"`
	AssetID        string     `json:"assetId" validate:"required"`
	AssignmentDate *time.Time `json:"assignmentDate,omitempty"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

// ListAssignments returns the assignment register joined against users and
// assets, then reduced and ordered by the screen's view parameters.
// Dangling references come back with sentinel labels instead of failing.
func ListAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assignments, err := fetchAssignments(ctx, bson.M{})
	if err != nil {
		slog.Error("assignment list query failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch assignments")
		return
	}

	users, assets, err := fetchUsersAndAssets(ctx)
	if err != nil {
		slog.Error("assignment join fetch failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch assignment references")
		return
	}

	enriched := views.ResolveAssignments(assignments, users, assets)

	q := views.ParseQuery(r.URL.Query(), "status")
	enriched = views.Project(enriched, q, views.AssignmentFields, views.AssignmentSearchKeys)

	utils.RespondWithJSON(w, http.StatusOK, enriched)
}

func CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req CreateAssignmentRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	if fields := utils.ValidateStruct(req); fields != nil {
		utils.RespondWithValidationErrors(w, fields)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	// both references must resolve when the assignment is created;
	// later deletions degrade to sentinel labels in the list view
	if err := userCollection.FindOne(ctx, bson.M{"userId": req.UserID}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "referenced user not found")
			return
		}
		slog.Error("assignment user check failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to verify user")
		return
	}
	if err := assetCollection.FindOne(ctx, bson.M{"assetId": req.AssetID}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "referenced asset not found")
			return
		}
		slog.Error("assignment asset check failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to verify asset")
		return
	}

	now := time.Now().UTC()
	assignmentDate := now
	if req.AssignmentDate != nil {
		assignmentDate = *req.AssignmentDate
	}

	assignment := models.Assignment{
		ID:             primitive.NewObjectID(),
		UserID:         req.UserID,
		AssetID:        req.AssetID,
		AssignmentDate: assignmentDate,
		DueDate:        req.DueDate,
		Notes:          req.Notes,
		Status:         models.AssignmentStatusActive,
		CreatedAt:      now,
	}

	if _, err := assignmentCollection.InsertOne(ctx, assignment); err != nil {
		slog.Error("assignment insert failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to create assignment")
		return
	}

	actor, _ := r.Context().Value("userID").(string)
	recordAudit(ctx, actor, "assignment_create", "assignment", assignment.ID.Hex(),
		bson.M{"userId": assignment.UserID, "assetId": assignment.AssetID})
	ws.SendAssignmentEvent("ASSIGNMENT_CREATED", assignment.ID.Hex(), assignment, actor)

	utils.RespondWithJSON(w, http.StatusCreated, assignment)
}

func GetAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid assignment id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var assignment models.Assignment
	if err := assignmentCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&assignment); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "assignment not found")
			return
		}
		slog.Error("assignment fetch failed", "id", id.Hex(), "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch assignment")
		return
	}

	users, assets, err := fetchUsersAndAssets(ctx)
	if err != nil {
		slog.Error("assignment join fetch failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch assignment references")
		return
	}

	enriched := views.ResolveAssignments([]models.Assignment{assignment}, users, assets)
	utils.RespondWithJSON(w, http.StatusOK, enriched[0])
}

type UpdateAssignmentRequest struct {
	AssignmentDate *time.Time `json:"assignmentDate,omitempty"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	Status         *string    `json:"status,omitempty" validate:"omitempty,oneof=active returned"`
}

func UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid assignment id")
		return
	}

	var req UpdateAssignmentRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	if fields := utils.ValidateStruct(req); fields != nil {
		utils.RespondWithValidationErrors(w, fields)
		return
	}

	set := bson.M{}
	if req.AssignmentDate != nil {
		set["assignmentDate"] = *req.AssignmentDate
	}
	if req.DueDate != nil {
		set["dueDate"] = *req.DueDate
	}
	if req.Notes != nil {
		set["notes"] = *req.Notes
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if len(set) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var updated models.Assignment
	err = assignmentCollection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "assignment not found")
			return
		}
		slog.Error("assignment update failed", "id", id.Hex(), "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to update assignment")
		return
	}

	actor, _ := r.Context().Value("userID").(string)
	recordAudit(ctx, actor, "assignment_update", "assignment", updated.ID.Hex(), bson.M{"fields": len(set)})
	ws.SendAssignmentEvent("ASSIGNMENT_UPDATED", updated.ID.Hex(), updated, actor)

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid assignment id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := assignmentCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		slog.Error("assignment delete failed", "id", id.Hex(), "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to delete assignment")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "assignment not found")
		return
	}

	actor, _ := r.Context().Value("userID").(string)
	recordAudit(ctx, actor, "assignment_delete", "assignment", id.Hex(), nil)
	ws.SendAssignmentEvent("ASSIGNMENT_DELETED", id.Hex(), nil, actor)

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Assignment deleted successfully"})
}

func fetchAssignments(ctx context.Context, filter bson.M) ([]models.Assignment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "assignmentDate", Value: -1}})
	cursor, err := assignmentCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	if assignments == nil {
		assignments = []models.Assignment{}
	}
	return assignments, nil
}

func fetchUsersAndAssets(ctx context.Context) ([]models.User, []models.Asset, error) {
	userCursor, err := userCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, nil, err
	}
	var users []models.User
	if err := userCursor.All(ctx, &users); err != nil {
		return nil, nil, err
	}

	assetCursor, err := assetCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, nil, err
	}
	var assets []models.Asset
	if err := assetCursor.All(ctx, &assets); err != nil {
		return nil, nil, err
	}

	return users, assets, nil
}
