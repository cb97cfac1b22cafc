package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ritikapurwa08/english-mastery/internal/config"
	"github.com/ritikapurwa08/english-mastery/internal/database"
	"github.com/ritikapurwa08/english-mastery/internal/handlers"
	"github.com/ritikapurwa08/english-mastery/internal/repository"
	"github.com/ritikapurwa08/english-mastery/internal/scheduler"
	"github.com/ritikapurwa08/english-mastery/internal/security"
	"github.com/ritikapurwa08/english-mastery/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Repositories
	userRepo := repository.NewUserRepository(db)
	wordRepo := repository.NewWordRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	resultRepo := repository.NewResultRepository(db)

	// Services
	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	tokenIssuer := security.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTokenDuration)
	authService := service.NewAuthService(userRepo, tokenIssuer, emailService, cfg.SessionDuration)
	progressService := service.NewProgressService(progressRepo, wordRepo, userRepo)
	testService := service.NewTestService(questionRepo, resultRepo, progressService)
	wordService := service.NewWordService(wordRepo, progressRepo)
	statsService := service.NewStatsService(userRepo, progressRepo, resultRepo)

	// Handlers
	csrf := security.NewCSRFGenerator(cfg.JWTSecret)
	rateLimiter := security.NewRateLimiter(20, time.Minute)
	middleware := handlers.NewMiddleware(authService, csrf, rateLimiter)
	authHandler := handlers.NewAuthHandler(authService, csrf)
	oauthHandler := handlers.NewOAuthHandler(authService, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.OAuthRedirectBase)
	wordHandler := handlers.NewWordHandler(wordService)
	progressHandler := handlers.NewProgressHandler(progressService)
	testHandler := handlers.NewTestHandler(testService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Routes
	mux := http.NewServeMux()

	// Public auth routes
	mux.HandleFunc("POST /api/auth/register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("POST /api/auth/token", middleware.RateLimit(authHandler.Token))
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("POST /api/auth/forgot-password", middleware.RateLimit(authHandler.ForgotPassword))
	mux.HandleFunc("GET /api/auth/reset-password", authHandler.ValidateResetToken)
	mux.HandleFunc("POST /api/auth/reset-password", middleware.RateLimit(authHandler.ResetPassword))
	mux.HandleFunc("GET /auth/google/start", oauthHandler.Start)
	mux.HandleFunc("GET /auth/google/callback", oauthHandler.Callback)

	// Session info
	mux.HandleFunc("GET /api/auth/me", middleware.RequireAuth(authHandler.Me))
	mux.HandleFunc("GET /api/auth/csrf", middleware.RequireAuth(authHandler.CSRFToken))

	// Words
	mux.HandleFunc("GET /api/words", middleware.RequireAuth(wordHandler.List))
	mux.HandleFunc("GET /api/words/favorites", middleware.RequireAuth(wordHandler.Favorites))
	mux.HandleFunc("GET /api/words/{id}", middleware.RequireAuth(wordHandler.Get))

	// Progress
	mux.HandleFunc("PUT /api/words/{id}/progress", middleware.RequireAuth(middleware.CSRFProtect(progressHandler.UpdateStatus)))
	mux.HandleFunc("POST /api/words/{id}/favorite", middleware.RequireAuth(middleware.CSRFProtect(progressHandler.ToggleFavorite)))

	// Tests
	mux.HandleFunc("POST /api/tests/generate", middleware.RequireAuth(middleware.CSRFProtect(testHandler.Generate)))
	mux.HandleFunc("POST /api/tests/submit", middleware.RequireAuth(middleware.CSRFProtect(testHandler.Submit)))
	mux.HandleFunc("GET /api/tests/history", middleware.RequireAuth(testHandler.History))
	mux.HandleFunc("GET /api/tests/results/{id}", middleware.RequireAuth(testHandler.Result))

	// Stats and settings
	mux.HandleFunc("GET /api/stats/dashboard", middleware.RequireAuth(statsHandler.Dashboard))
	mux.HandleFunc("GET /api/stats/profile", middleware.RequireAuth(statsHandler.Profile))
	mux.HandleFunc("PUT /api/settings", middleware.RequireAuth(middleware.CSRFProtect(statsHandler.UpdateSettings)))

	handler := handlers.Logging(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Background jobs
	jobs := scheduler.New(authService, emailService, userRepo, cfg.ReminderHour)
	jobs.Start()
	defer jobs.Stop()

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}
