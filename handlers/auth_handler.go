// handlers/auth_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Abinet16/Mulu-Asset-Managment-template/config"
	"github.com/Abinet16/Mulu-Asset-Managment-template/models"
	"github.com/Abinet16/Mulu-Asset-Managment-template/utils"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Login authenticates by email+password, issues a JWT and sets it as the
// auth cookie. The token is also returned in the body for clients that
// prefer the Authorization header.
func Login(w http.ResponseWriter, r *http.Request) {
	var creds LoginRequest
	if err := utils.ParseJSON(r, &creds); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	creds.Email = strings.TrimSpace(creds.Email)

	if fields := utils.ValidateStruct(creds); fields != nil {
		utils.RespondWithValidationErrors(w, fields)
		return
	}

	var user models.User
	err := userCollection.FindOne(r.Context(), bson.M{"email": creds.Email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// burn a comparison so missing users cost the same as bad passwords
			_ = utils.CheckPasswordHash("dummy_password", "$2a$10$dummyhashfordummycomparison")
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		slog.Error("login lookup failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Authentication service unavailable")
		return
	}

	if !utils.CheckPasswordHash(creds.Password, user.PasswordHash) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if user.Status == models.UserStatusSuspended || user.Status == models.UserStatusInactive {
		utils.RespondWithError(w, http.StatusForbidden, "Account is not active")
		return
	}

	token, err := utils.GenerateJWT(user.UserID, user.Email, user.Role)
	if err != nil {
		slog.Error("JWT generation failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     config.AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(config.JWTExpiration),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user": map[string]interface{}{
			"userId":   user.UserID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// Logout clears the auth cookie. Tokens are not tracked server-side, so
// this is all there is to it.
func Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     config.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// CheckAuth reports the verified identity of the caller.
func CheckAuth(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value("userID").(string)
	email, _ := r.Context().Value("userEmail").(string)
	role, _ := r.Context().Value("userRole").(string)

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"userId": userID,
		"email":  email,
		"role":   role,
	})
}
