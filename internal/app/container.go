package app

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"

	"alfredoptarigan/hiring-portal/internal/config"
	"alfredoptarigan/hiring-portal/internal/repositories"
	"alfredoptarigan/hiring-portal/internal/services"
)

// Container holds the wired repositories and services shared by the API server
// and the CLI.
type Container struct {
	DB        *gorm.DB
	QueryPool *pgxpool.Pool

	ApplicationRepo repositories.ApplicationRepository
	JobRepo         repositories.JobRepository
	StudentRepo     repositories.StudentRepository

	BlobStore  services.BlobStore
	Extractor  services.TextExtractor
	Evaluator  services.EvaluatorService
	Translator services.QueryTranslator
	Apply      services.ApplyService
}

// Bootstrap connects to the database, opens the query pool and wires every
// service. The returned cleanup releases both connections.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Container, func() error, error) {
	db, err := config.InitDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}

	pool, err := config.InitQueryPool(ctx, cfg)
	if err != nil {
		closeGorm(db)
		return nil, nil, err
	}

	cleanup := func() error {
		pool.Close()
		return closeGorm(db)
	}

	appRepo := repositories.NewApplicationRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	studentRepo := repositories.NewStudentRepository(db)
	log.Println("✅ Repositories initialized successfully")

	blobStore := services.NewStorageService(cfg.Storage.UploadPath)
	if err := blobStore.EnsureUploadDir(); err != nil {
		_ = cleanup()
		return nil, nil, err
	}

	generator, err := services.NewGenerationClient(ctx, cfg.LLM)
	if err != nil {
		_ = cleanup()
		return nil, nil, fmt.Errorf("failed to initialize generation client: %w", err)
	}
	if generator != nil {
		log.Printf("✅ Generation client initialized (%s)", cfg.LLM.Provider)
	}

	extractor := services.NewTextExtractor()
	evaluator := services.NewEvaluatorService(appRepo, jobRepo, studentRepo, blobStore, extractor, generator)
	executor := services.NewQueryExecutor(repositories.NewSQLFunctionEngine(pool, cfg.Query.ExecuteFunction))
	translator := services.NewQueryTranslator(generator, services.NewQueryGate(), executor)
	log.Println("✅ Services initialized successfully")

	return &Container{
		DB:              db,
		QueryPool:       pool,
		ApplicationRepo: appRepo,
		JobRepo:         jobRepo,
		StudentRepo:     studentRepo,
		BlobStore:       blobStore,
		Extractor:       extractor,
		Evaluator:       evaluator,
		Translator:      translator,
		Apply:           services.NewApplyService(studentRepo, appRepo, blobStore, extractor, evaluator),
	}, cleanup, nil
}

func closeGorm(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
