package main

import (
	"fmt"
	"log"

	"renty/internal/config"
	"renty/internal/docstore/local"
	"renty/internal/extract"
	"renty/internal/handler"
	"renty/internal/repository/postgres"
	"renty/internal/router"
	"renty/internal/service"
	s3storage "renty/internal/storage/s3"
	"renty/internal/verify"
	"renty/internal/verify/gemini"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	landlordRepo := postgres.NewLandlordRepo(db)
	tenantRepo := postgres.NewTenantRepo(db)
	reviewRepo := postgres.NewReviewRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize lease verification pipeline
	pipeline := verify.NewPipeline(
		local.NewStore(cfg.Verifier.TmpDir),
		extract.NewExtractor(),
		gemini.NewClient(&cfg.Verifier),
		verify.NewEngine(cfg.Verifier.ConfidenceThreshold),
	)

	// Initialize services
	authSvc := service.NewAuthService(landlordRepo, cfg.JWT)
	tenantSvc := service.NewTenantService(tenantRepo, reviewRepo, s3Client, &cfg.S3)
	reviewSvc := service.NewReviewService(reviewRepo, tenantRepo, landlordRepo, s3Client, &cfg.S3)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	tenantH := handler.NewTenantHandler(tenantSvc)
	reviewH := handler.NewReviewHandler(reviewSvc, tenantSvc, pipeline, cfg.Verifier.MaxUploadMB)
	verificationH := handler.NewVerificationHandler(pipeline, cfg.Verifier.MaxUploadMB)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, tenantH, reviewH, verificationH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
