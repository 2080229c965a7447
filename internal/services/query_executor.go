package services

import (
	"context"
	"fmt"
	"log"

	"alfredoptarigan/hiring-portal/internal/models"
)

// QueryEngine runs a vetted statement on the read-only execution boundary.
type QueryEngine interface {
	Execute(ctx context.Context, query string) ([]models.Record, error)
}

type QueryExecutor interface {
	Run(ctx context.Context, vettedSQL string) (*models.QueryResult, error)
}

type queryExecutor struct {
	engine QueryEngine
}

func NewQueryExecutor(engine QueryEngine) QueryExecutor {
	return &queryExecutor{engine: engine}
}

// Run implements QueryExecutor. Failures are wrapped as ErrExecution and never retried.
func (e *queryExecutor) Run(ctx context.Context, vettedSQL string) (*models.QueryResult, error) {
	records, err := e.engine.Execute(ctx, vettedSQL)
	if err != nil {
		log.Printf("❌ Query execution failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrExecution, err)
	}

	return reshapeRecords(records), nil
}

// reshapeRecords takes the column order from the first record and lays every
// record out positionally in that order. Keys a record lacks become nil. A
// repeated key yields one column holding its first value.
func reshapeRecords(records []models.Record) *models.QueryResult {
	if len(records) == 0 || len(records[0]) == 0 {
		return models.EmptyQueryResult()
	}

	columns := make([]string, 0, len(records[0]))
	seen := make(map[string]struct{}, len(records[0]))
	for _, field := range records[0] {
		if _, dup := seen[field.Name]; dup {
			continue
		}
		seen[field.Name] = struct{}{}
		columns = append(columns, field.Name)
	}

	rows := make([][]any, 0, len(records))
	for _, record := range records {
		row := make([]any, len(columns))
		for i, column := range columns {
			row[i], _ = record.Get(column)
		}
		rows = append(rows, row)
	}

	return &models.QueryResult{
		Columns: columns,
		Rows:    rows,
	}
}
