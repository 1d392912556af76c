package api

import (
	"github.com/gorilla/mux"

	"mentorlink/internal/account"
	"mentorlink/internal/config"
	"mentorlink/internal/db"
	"mentorlink/internal/repository/sqlite"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, database *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository and services
	repo := sqlite.New(database, logger)
	accountSvc := account.NewService(repo, repo, cfg.BcryptCost, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(accountSvc, cfg.JWTSecret, cfg.TokenDuration)
	profileHandler := NewProfileHandler(accountSvc, cfg.JWTSecret, cfg.TokenDuration)
	directoryHandler := NewDirectoryHandler(accountSvc)
	connectionsHandler := NewConnectionsHandler(accountSvc, cfg.JWTSecret)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/v1/auth/signin", authHandler.Signin).Methods("POST")

	// Connection logging checks the token itself so it can answer with a
	// structured payload when the caller is not signed in.
	r.HandleFunc("/v1/connections/{mentorID}", connectionsHandler.LogConnection).Methods("GET")

	// API v1 Protected routes
	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))

	// Auth endpoints
	authV1 := apiV1.PathPrefix("/auth").Subrouter()
	authV1.HandleFunc("/signout", authHandler.Signout).Methods("POST")

	// Profile endpoints
	apiV1.HandleFunc("/profile", profileHandler.GetProfile).Methods("GET")
	apiV1.HandleFunc("/profile", profileHandler.UpdateProfile).Methods("PUT")

	// Directory endpoint
	apiV1.HandleFunc("/directory", directoryHandler.Directory).Methods("GET")

	return r
}
