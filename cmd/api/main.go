package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rodamoinho/recibos-api/internal/application/service"
	"github.com/rodamoinho/recibos-api/internal/config"
	"github.com/rodamoinho/recibos-api/internal/infrastructure/database"
	"github.com/rodamoinho/recibos-api/internal/infrastructure/repository"
	"github.com/rodamoinho/recibos-api/internal/infrastructure/storage"
	"github.com/rodamoinho/recibos-api/internal/presentation/http/handler"
	"github.com/rodamoinho/recibos-api/internal/presentation/http/routes"
	"github.com/rodamoinho/recibos-api/pkg/document"
	"github.com/rodamoinho/recibos-api/pkg/enhance"
	"github.com/rodamoinho/recibos-api/pkg/share"
	"github.com/rodamoinho/recibos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(&cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	kv := storage.NewGormKV(db)
	profileRepo := repository.NewProfileRepository(kv)
	historyRepo := repository.NewHistoryRepository(kv)
	sequenceRepo := repository.NewSequenceRepository(kv)

	// Initialize document pipeline
	renderer, err := document.NewRenderer()
	if err != nil {
		logrus.Fatalf("Failed to initialize document renderer: %v", err)
	}
	exporter := document.NewExporter(renderer)

	// Initialize share channel
	sharer, err := share.NewSharerFromConfig(cfg.Share.Type, cfg.Share.Dir, share.SMTPConfig{
		Host:     cfg.Share.SMTPHost,
		Port:     cfg.Share.SMTPPort,
		Username: cfg.Share.SMTPUsername,
		Password: cfg.Share.SMTPPassword,
		From:     cfg.Share.From,
		To:       cfg.Share.To,
	})
	if err != nil {
		logrus.Warnf("Failed to initialize share channel: %v", err)
		sharer = share.NewNullSharer()
	}

	// Initialize description enhancer
	var enhancer enhance.Enhancer
	if cfg.Enhancer.Endpoint != "" {
		enhancer = enhance.NewHTTPEnhancer(enhance.Config{
			Endpoint: cfg.Enhancer.Endpoint,
			APIKey:   cfg.Enhancer.APIKey,
			Model:    cfg.Enhancer.Model,
		})
	} else {
		enhancer = enhance.NewNoopEnhancer()
	}

	// Initialize services
	authService, err := service.NewAuthService(cfg.Admin.Password, jwtManager)
	if err != nil {
		logrus.Fatalf("Failed to initialize auth service: %v", err)
	}
	profileService := service.NewProfileService(profileRepo)
	signatureService := service.NewSignatureService(profileRepo)
	receiptService := service.NewReceiptService(profileRepo, historyRepo, sequenceRepo, exporter, sharer, enhancer)
	historyService := service.NewHistoryService(historyRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Profile:   handler.NewProfileHandler(profileService),
		Signature: handler.NewSignatureHandler(signatureService),
		Receipt:   handler.NewReceiptHandler(receiptService),
		History:   handler.NewHistoryHandler(historyService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logrus.Infof("Starting %s server on port %s (env: %s)", cfg.App.Name, port, cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
