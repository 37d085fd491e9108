package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/agile-students-fall2025/4-final-habita-sub000/internal/auth"
	"github.com/agile-students-fall2025/4-final-habita-sub000/internal/bill"
	"github.com/agile-students-fall2025/4-final-habita-sub000/internal/chat"
	"github.com/agile-students-fall2025/4-final-habita-sub000/internal/config"
	"github.com/agile-students-fall2025/4-final-habita-sub000/internal/database"
	"github.com/agile-students-fall2025/4-final-habita-sub000/internal/household"
	"github.com/agile-students-fall2025/4-final-habita-sub000/internal/mood"
	"github.com/agile-students-fall2025/4-final-habita-sub000/internal/notification"
	"github.com/agile-students-fall2025/4-final-habita-sub000/internal/task"
	"github.com/agile-students-fall2025/4-final-habita-sub000/internal/user"
	"github.com/agile-students-fall2025/4-final-habita-sub000/pkg/logging"
	mw "github.com/agile-students-fall2025/4-final-habita-sub000/pkg/middleware"
)

// @title           Habita API
// @version         1.0
// @description     Backend for the Habita household management app.
// @BasePath        /api
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	logging.Setup()

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	slog.Info("Connected to database successfully")

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// User feature
	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo, jwtManager)
	userHandler := user.NewHandler(userService)

	// Household feature
	householdRepo := household.NewRepository(db)
	householdService := household.NewService(householdRepo)
	householdHandler := household.NewHandler(householdService)

	// Notification feature
	notificationRepo := notification.NewRepository(db)
	notificationService := notification.NewService(notificationRepo)
	notificationHandler := notification.NewHandler(notificationService)

	// Bill feature (with notification service injected)
	billRepo := bill.NewPostgresRepository(db)
	billService := bill.NewService(billRepo, notificationService)
	billHandler := bill.NewHandler(billService)

	// Task feature
	taskRepo := task.NewPostgresRepository(db)
	taskService := task.NewService(taskRepo, notificationService)
	taskHandler := task.NewHandler(taskService)

	// Chat feature
	chatRepo := chat.NewPostgresRepository(db)
	chatService := chat.NewService(chatRepo)
	chatHandler := chat.NewHandler(chatService)

	// Mood feature
	moodRepo := mood.NewPostgresRepository(db)
	moodService := mood.NewService(moodRepo)
	moodHandler := mood.NewHandler(moodService)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.Metrics)
	r.Use(mw.RequestLogger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Mount("/auth", userHandler.PublicRoutes())

		// Everything below requires a valid token
		r.Group(func(r chi.Router) {
			r.Use(mw.Authenticator(jwtManager))

			r.Mount("/users", userHandler.Routes())
			r.Mount("/households", householdHandler.Routes())
			r.Mount("/bills", billHandler.Routes())
			r.Mount("/tasks", taskHandler.Routes())
			r.Mount("/chat", chatHandler.Routes())
			r.Mount("/moods", moodHandler.Routes())
			r.Mount("/notifications", notificationHandler.Routes())
		})
	})

	slog.Info("Server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}
