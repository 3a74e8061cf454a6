// handlers/user_handler.go
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
)

type CreateUserRequest struct {
	UserID     string `json:"userId" validate:"required"`
	Username   string `json:"username" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Role       string `json:"role" validate:"required,oneof=admin manager technician employee"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended"`
	Password   string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// ListUsers returns the user directory with server-side search/filter/sort.
// Password hashes never leave the store boundary.
func ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := userCollection.Find(ctx, bson.M{})
	if err != nil {
		slog.Error("user list query failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch users")
		return
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		slog.Error("user list decode failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to decode users")
		return
	}
	if users == nil {
		users = []models.User{}
	}

	q := views.ParseQuery(r.URL.Query(), "role", "status", "department")
	users = views.Project(users, q, views.UserFields, views.UserSearchKeys)

	utils.RespondWithJSON(w, http.StatusOK, users)
}

func CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	if fields := utils.ValidateStruct(req); fields != nil {
		utils.RespondWithValidationErrors(w, fields)
		return
	}

	if req.Status == "" {
		req.Status = models.UserStatusActive
	}

	password := req.Password
	if password == "" {
		password = utils.GenerateRandomPassword(12)
		slog.Info("generated temporary password for new user", "userId", req.UserID)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		slog.Error("password hashing failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "password processing failed")
		return
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           primitive.NewObjectID(),
		UserID:       req.UserID,
		Username:     req.Username,
		Email:        req.Email,
		Role:         req.Role,
		Department:   req.Department,
		Position:     req.Position,
		Phone:        req.Phone,
		Status:       req.Status,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if _, err := userCollection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusBadRequest, "user with this userId or email already exists")
			return
		}
		slog.Error("user insert failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	actor, _ := r.Context().Value("userID").(string)
	recordAudit(ctx, actor, "user_create", "user", user.UserID, bson.M{"role": user.Role})

	utils.RespondWithJSON(w, http.StatusCreated, user)
}

func GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "user id required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "user not found")
			return
		}
		slog.Error("user fetch failed", "userId", userID, "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

type UpdateUserRequest struct {
	Username   *string `json:"username,omitempty"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Role       *string `json:"role,omitempty" validate:"omitempty,oneof=admin manager technician employee"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended"`
	Password   *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

func UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "user id required")
		return
	}

	var req UpdateUserRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	if fields := utils.ValidateStruct(req); fields != nil {
		utils.RespondWithValidationErrors(w, fields)
		return
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if req.Username != nil {
		set["username"] = *req.Username
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Role != nil {
		set["role"] = *req.Role
	}
	if req.Department != nil {
		set["department"] = *req.Department
	}
	if req.Position != nil {
		set["position"] = *req.Position
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			slog.Error("password hashing failed", "error", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "password processing failed")
			return
		}
		set["passwordHash"] = hash
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var updated models.User
	err := userCollection.FindOneAndUpdate(
		ctx,
		bson.M{"userId": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "user not found")
			return
		}
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusBadRequest, "email already in use")
			return
		}
		slog.Error("user update failed", "userId", userID, "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to update user")
		return
	}

	actor, _ := r.Context().Value("userID").(string)
	recordAudit(ctx, actor, "user_update", "user", userID, bson.M{"fields": len(set) - 1})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "user id required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := userCollection.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		slog.Error("user delete failed", "userId", userID, "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "user not found")
		return
	}

	actor, _ := r.Context().Value("userID").(string)
	recordAudit(ctx, actor, "user_delete", "user", userID, nil)

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
