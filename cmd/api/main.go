package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"dancestudio/internal/config"
	"dancestudio/internal/database"
	"dancestudio/internal/middleware"
	"dancestudio/internal/modules/auth"
	"dancestudio/internal/modules/calendar"
	"dancestudio/internal/modules/catalog"
	"dancestudio/internal/modules/studio"
	jwtsvc "dancestudio/internal/pkg/jwt"
	"dancestudio/internal/repository"
	"dancestudio/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	refreshRepo := repository.NewRefreshTokenRepository(db)
	classRepo := repository.NewClassRepository(db)
	eventRepo := repository.NewEventRepository(db)
	workshopRepo := repository.NewWorkshopRepository(db)
	packageRepo := repository.NewPackageRepository(db)

	// Shared services
	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	store := storage.NewLocal(cfg.UploadDir, cfg.StaticBaseURL)

	calendarService := calendar.NewService(classRepo, eventRepo, workshopRepo)
	hub := calendar.NewHub(calendarService)
	defer hub.Close()

	// Modules
	authService := auth.NewService(userRepo, profileRepo, refreshRepo, jwtService, cfg.RefreshTokenPepper, cfg.RefreshTTL)
	authHandler := auth.NewHandler(authService)

	studioService := studio.NewService(profileRepo, store)
	studioHandler := studio.NewHandler(studioService)

	catalogService := catalog.NewService(classRepo, eventRepo, workshopRepo, packageRepo, store, hub)
	catalogHandler := catalog.NewHandler(catalogService)

	calendarHandler := calendar.NewHandler(calendarService, hub, profileRepo)

	// Expired refresh tokens pile up quietly; purge them hourly.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@hourly", func() {
		n, err := refreshRepo.DeleteExpired(context.Background())
		if err != nil {
			log.Printf("token purge failed: %v", err)
			return
		}
		if n > 0 {
			log.Printf("token purge removed %d expired tokens", n)
		}
	}); err != nil {
		log.Fatalf("Scheduler setup failed: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := gin.New()
	router.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	router.Static(cfg.StaticBaseURL, cfg.UploadDir)

	v1 := router.Group("/api/v1")
	authHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(jwtService))
	authHandler.RegisterProtectedRoutes(protected)
	studioHandler.RegisterRoutes(protected)
	catalogHandler.RegisterRoutes(protected)
	calendarHandler.RegisterRoutes(protected)

	log.Printf("Listening on %s", cfg.ListenAddr)
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
