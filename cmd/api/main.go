package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"go-portfolio-backend/config"
	_ "go-portfolio-backend/docs"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/repository/mongodb"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/database"
	"go-portfolio-backend/pkg/hash"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/redis"
	"go-portfolio-backend/pkg/token"
)

// @title           Portfolio API
// @version         1.0
// @description     Backend for a personal portfolio site: authentication plus CRUD for skills, languages, education, experiences and certificates.

// @BasePath  /v1

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the token.
func main() {
	logger.Init()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	client, err := database.NewMongoConnection(cfg.MongoURI)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Log.Error("Failed to disconnect from database", "error", err)
		}
	}()

	db := client.Database(cfg.MongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		cancel()
		logger.Log.Error("Failed to create indexes", "error", err)
		os.Exit(1)
	}
	cancel()

	if err := redis.Initialize(redis.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	} else {
		defer redis.Close()
	}

	hasher := hash.NewBcrypt()
	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	validate := validator.New()

	userRepo := mongodb.NewUserRepository(db)
	skillRepo := mongodb.NewSkillRepository(db)
	languageRepo := mongodb.NewLanguageRepository(db)
	educationRepo := mongodb.NewEducationRepository(db)
	experienceRepo := mongodb.NewExperienceRepository(db)
	certificateRepo := mongodb.NewCertificateRepository(db)

	userUC := usecase.NewUserUsecase(userRepo, hasher, validate)

	bootstrapUser(userUC, cfg)

	router := v1.NewRouter(v1.RouterDeps{
		Config:        cfg,
		Tokens:        tokens,
		AuthUC:        usecase.NewAuthUsecase(userRepo, hasher, tokens),
		UserUC:        userUC,
		SkillUC:       usecase.NewSkillUsecase(skillRepo),
		LanguageUC:    usecase.NewLanguageUsecase(languageRepo),
		EducationUC:   usecase.NewEducationUsecase(educationRepo),
		ExperienceUC:  usecase.NewExperienceUsecase(experienceRepo),
		CertificateUC: usecase.NewCertificateUsecase(certificateRepo),
		DashboardUC:   usecase.NewDashboardUsecase(skillRepo, certificateRepo),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Forced shutdown", "error", err)
	}

	logger.Log.Info("Server stopped")
}

// bootstrapUser creates the initial user at startup so the API is usable
// on a fresh database. A no-op when credentials are not configured or the
// user already exists.
func bootstrapUser(userUC domain.UserUsecase, cfg *config.Config) {
	if cfg.BootstrapUsername == "" || cfg.BootstrapPassword == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := userUC.FindByUsername(ctx, cfg.BootstrapUsername)
	if err != nil {
		logger.Log.Error("Bootstrap user lookup failed", "error", err)
		return
	}
	if existing != nil {
		return
	}

	if _, err := userUC.Create(ctx, cfg.BootstrapUsername, cfg.BootstrapPassword); err != nil {
		logger.Log.Error("Bootstrap user creation failed", "error", err)
		return
	}

	logger.Log.Info("Bootstrap user created", "username", cfg.BootstrapUsername)
}
