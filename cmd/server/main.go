package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordscramble/internal/config"
	"wordscramble/internal/database"
	"wordscramble/internal/handlers"
	"wordscramble/internal/repository"
	"wordscramble/internal/security"
	"wordscramble/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Seed the display name filter
	if err := db.SeedBadWords(); err != nil {
		log.Printf("Warning: Failed to seed bad words filter: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	wordRepo := repository.NewWordRepository(db)
	gameRepo := repository.NewGameRepository(db)

	// Initialize services
	tokenService := security.NewTokenService(cfg.JWTSecret, cfg.TokenDuration)
	emailService, err := service.NewEmailService(cfg.SESRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	scrambler := service.NewScrambler(rand.New(rand.NewSource(time.Now().UnixNano())))
	authService := service.NewAuthService(userRepo, db, tokenService, emailService)
	gameService := service.NewGameService(gameRepo, wordRepo, userRepo, scrambler, cfg.SessionTTL)
	leaderboardService := service.NewLeaderboardService(gameRepo)
	contentService := service.NewContentService(wordRepo)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	middleware := handlers.NewMiddleware(tokenService)
	authHandler := handlers.NewAuthHandler(authService)
	oauthHandler := handlers.NewOAuthHandler(authService, cfg)
	gameHandler := handlers.NewGameHandler(gameService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	categoryHandler := handlers.NewCategoryHandler(contentService)
	adminHandler := handlers.NewAdminHandler(contentService, leaderboardService, userService)

	// Login and registration share a rate limit budget per client IP.
	loginLimiter := security.NewRateLimiter(10, time.Minute)

	// Setup routes
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("POST /api/auth/register", handlers.RateLimit(loginLimiter, authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", handlers.RateLimit(loginLimiter, authHandler.Login))
	mux.HandleFunc("GET /api/auth/{provider}/start", oauthHandler.Start)
	mux.HandleFunc("GET /api/auth/{provider}/callback", oauthHandler.Callback)
	mux.HandleFunc("GET /api/categories", categoryHandler.List)
	mux.HandleFunc("GET /api/leaderboard", leaderboardHandler.Top)

	// Authenticated routes
	mux.HandleFunc("GET /api/auth/me", middleware.RequireAuth(authHandler.Me))
	mux.HandleFunc("GET /api/games/start", middleware.RequireAuth(gameHandler.StartGame))
	mux.HandleFunc("POST /api/games/finish", middleware.RequireAuth(gameHandler.FinishGame))
	mux.HandleFunc("GET /api/games/recent", middleware.RequireAuth(gameHandler.Recent))
	mux.HandleFunc("GET /api/games/history", middleware.RequireAuth(gameHandler.History))

	// Admin routes
	mux.HandleFunc("GET /api/admin/words", middleware.RequireAdmin(adminHandler.ListWords))
	mux.HandleFunc("POST /api/admin/words", middleware.RequireAdmin(adminHandler.CreateWord))
	mux.HandleFunc("DELETE /api/admin/words/{id}", middleware.RequireAdmin(adminHandler.DeleteWord))
	mux.HandleFunc("POST /api/admin/categories", middleware.RequireAdmin(adminHandler.CreateCategory))
	mux.HandleFunc("DELETE /api/admin/categories/{id}", middleware.RequireAdmin(adminHandler.DeleteCategory))
	mux.HandleFunc("DELETE /api/admin/leaderboard/{id}", middleware.RequireAdmin(adminHandler.DeleteLeaderboardEntry))
	mux.HandleFunc("GET /api/admin/users", middleware.RequireAdmin(adminHandler.ListUsers))
	mux.HandleFunc("DELETE /api/admin/users/{id}", middleware.RequireAdmin(adminHandler.DeleteUser))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Sweep abandoned game sessions in the background
	stopSweeper := make(chan struct{})
	go sweepExpiredSessions(gameRepo, cfg.SessionTTL, stopSweeper)

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	close(stopSweeper)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// sweepExpiredSessions deletes abandoned game sessions once an hour
func sweepExpiredSessions(gameRepo *repository.GameRepository, ttl time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().UTC().Add(-ttl)
			swept, err := gameRepo.DeleteSessionsBefore(cutoff)
			if err != nil {
				log.Printf("Failed to sweep expired sessions: %v", err)
				continue
			}
			if swept > 0 {
				log.Printf("Swept %d expired game sessions", swept)
			}
		case <-stop:
			return
		}
	}
}
