package main

import (
	"log"
	"net/http"

	"tracker/config"
	"tracker/handlers"
	"tracker/middleware"
	"tracker/store"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize JWT secret
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Initialize database
	st, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := st.SeedDemoUsers(); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, st)
	projectHandler := handlers.NewProjectHandler(st)
	userHandler := handlers.NewUserHandler(st)
	commentHandler := handlers.NewCommentHandler(st)

	// Setup router
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	// Public routes
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/projects", http.StatusSeeOther)
	})
	router.Post("/login", authHandler.Login)
	router.Get("/logout", authHandler.Logout)

	// Protected routes
	router.Group(func(r chi.Router) {
		r.Use(middleware.Auth(st))

		r.Get("/projects", projectHandler.List)
		r.Post("/projects", projectHandler.ListAction)
		r.Get("/projects/{projectID}", projectHandler.Board)

		r.Get("/manage-projects", projectHandler.List)
		r.Post("/manage-projects/new", projectHandler.Create)

		r.Get("/users", userHandler.List)
		r.Get("/users/{userID}", userHandler.Get)

		r.Post("/issues/{issueID}/comments", commentHandler.Create)
		r.Post("/comments/delete", commentHandler.Delete)
	})

	log.Printf("Server starting on port %s", cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, router))
}
