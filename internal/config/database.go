package config

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alfredoptarigan/hiring-portal/internal/models"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := cfg.GetDatabaseDSN()

	logLevel := logger.Silent
	if cfg.Server.Env == "development" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("✅ Database connected successfully")

	if err := db.AutoMigrate(
		&models.Student{},
		&models.Job{},
		&models.Application{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("✅ Database migration completed")

	if err := ensureQueryFunction(db, cfg.Query.ExecuteFunction); err != nil {
		return nil, err
	}

	return db, nil
}

// queryFunctionSQL defines the function vetted statements run through. json_agg
// over the row keeps the statement's column order in each object.
const queryFunctionSQL = `CREATE OR REPLACE FUNCTION %s(query text) RETURNS json
LANGUAGE plpgsql STABLE AS $fn$
DECLARE
	result json;
BEGIN
	EXECUTE format('SELECT coalesce(json_agg(t), ''[]''::json) FROM (%%s) t', query) INTO result;
	RETURN result;
END
$fn$`

func ensureQueryFunction(db *gorm.DB, name string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("invalid query function name: %q", name)
	}

	if err := db.Exec(fmt.Sprintf(queryFunctionSQL, name)).Error; err != nil {
		return fmt.Errorf("failed to create query function: %w", err)
	}

	log.Printf("✅ Query function %s ready", name)
	return nil
}

// InitQueryPool opens the pgx pool used to reach the read-only query function.
func InitQueryPool(ctx context.Context, cfg *Config) (*pgxpool.Pool, error) {
	if !identifierPattern.MatchString(cfg.Query.ExecuteFunction) {
		return nil, fmt.Errorf("invalid query function name: %q", cfg.Query.ExecuteFunction)
	}

	pcfg, err := pgxpool.ParseConfig(cfg.GetDatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse query pool config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create query pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping query pool: %w", err)
	}

	log.Println("✅ Query pool connected successfully")
	return pool, nil
}
