package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Abinet16/Mulu-Asset-Managment-template/handlers"
	"github.com/Abinet16/Mulu-Asset-Managment-template/middleware"
	"github.com/Abinet16/Mulu-Asset-Managment-template/models"
	ws "github.com/Abinet16/Mulu-Asset-Managment-template/websocket"
)

// HTTP method constants for better maintainability
var (
	MethodsGetOnly    = []string{"GET", "OPTIONS"}
	MethodsPostOnly   = []string{"POST", "OPTIONS"}
	MethodsPutOnly    = []string{"PUT", "OPTIONS"}
	MethodsDeleteOnly = []string{"DELETE", "OPTIONS"}
)

const (
	PathAPI    = "/api"
	PathHealth = "/health"
)

func RegisterRoutes(r *mux.Router) {
	// ====================
	// HEALTH CHECK (Public)
	// ====================
	r.HandleFunc(PathHealth, handlers.HealthCheck).Methods(MethodsGetOnly...)

	// ====================
	// AUTHENTICATION (Public)
	// ====================
	r.HandleFunc("/api/auth/login", handlers.Login).Methods(MethodsPostOnly...)
	r.HandleFunc("/api/auth/logout", handlers.Logout).Methods(MethodsPostOnly...)

	// ====================
	// PROTECTED API ROUTES
	// ====================
	apiRouter := r.PathPrefix(PathAPI).Subrouter()
	apiRouter.Use(middleware.AuthMiddleware)

	apiRouter.HandleFunc("/auth/check", handlers.CheckAuth).Methods(MethodsGetOnly...)

	// Assets: anyone authenticated can read; admins and technicians
	// create; only admins change or remove records.
	apiRouter.HandleFunc("/assets", handlers.ListAssets).Methods(MethodsGetOnly...)
	apiRouter.Handle("/assets",
		middleware.RequireRole(models.RoleAdmin, models.RoleTechnician)(
			http.HandlerFunc(handlers.CreateAsset))).Methods(MethodsPostOnly...)
	apiRouter.HandleFunc("/assets/{assetId}", handlers.GetAsset).Methods(MethodsGetOnly...)

	// User management and assignments are admin-only.
	adminRouter := apiRouter.PathPrefix("/").Subrouter()
	adminRouter.Use(middleware.AdminOnly)

	adminRouter.HandleFunc("/users", handlers.ListUsers).Methods(MethodsGetOnly...)
	adminRouter.HandleFunc("/users", handlers.CreateUser).Methods(MethodsPostOnly...)
	adminRouter.HandleFunc("/users/{userId}", handlers.GetUser).Methods(MethodsGetOnly...)
	adminRouter.HandleFunc("/users/{userId}", handlers.UpdateUser).Methods(MethodsPutOnly...)
	adminRouter.HandleFunc("/users/{userId}", handlers.DeleteUser).Methods(MethodsDeleteOnly...)

	adminRouter.HandleFunc("/assignments", handlers.ListAssignments).Methods(MethodsGetOnly...)
	adminRouter.HandleFunc("/assignments", handlers.CreateAssignment).Methods(MethodsPostOnly...)
	adminRouter.HandleFunc("/assignments/{id}", handlers.GetAssignment).Methods(MethodsGetOnly...)
	adminRouter.HandleFunc("/assignments/{id}", handlers.UpdateAssignment).Methods(MethodsPutOnly...)
	adminRouter.HandleFunc("/assignments/{id}", handlers.DeleteAssignment).Methods(MethodsDeleteOnly...)

	adminRouter.HandleFunc("/assets/{assetId}", handlers.UpdateAsset).Methods(MethodsPutOnly...)
	adminRouter.HandleFunc("/assets/{assetId}", handlers.DeleteAsset).Methods(MethodsDeleteOnly...)

	adminRouter.HandleFunc("/dashboard/stats", handlers.GetDashboardStats).Methods(MethodsGetOnly...)
	adminRouter.HandleFunc("/audit", handlers.ListAuditLogs).Methods(MethodsGetOnly...)

	// Employee self-service
	apiRouter.HandleFunc("/employee/assets", handlers.GetMyAssets).Methods(MethodsGetOnly...)

	// Live event feed
	apiRouter.HandleFunc("/ws", ws.ServeWS).Methods(MethodsGetOnly...)
}
