package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"alfredoptarigan/hiring-portal/internal/models"
)

// txBeginner is the subset of *pgxpool.Pool the engine needs.
type txBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// SQLFunctionEngine runs vetted statements through a stored function that
// returns its result set as a JSON array of row objects. Every call runs in a
// read-only transaction.
type SQLFunctionEngine struct {
	db        txBeginner
	statement string
}

// NewSQLFunctionEngine expects function to be a validated SQL identifier.
func NewSQLFunctionEngine(db txBeginner, function string) *SQLFunctionEngine {
	return &SQLFunctionEngine{
		db:        db,
		statement: fmt.Sprintf("SELECT %s($1)", function),
	}
}

func (e *SQLFunctionEngine) Execute(ctx context.Context, query string) ([]models.Record, error) {
	tx, err := e.db.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("failed to begin read-only transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var payload []byte
	if err := tx.QueryRow(ctx, e.statement, query).Scan(&payload); err != nil {
		return nil, fmt.Errorf("failed to call query function: %w", err)
	}

	records, err := decodeRecords(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode query function result: %w", err)
	}

	return records, nil
}

// decodeRecords decodes a JSON array of objects, keeping each object's key order.
// A JSON null or empty payload means no rows.
func decodeRecords(payload []byte) ([]models.Record, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}

	var records []models.Record
	for dec.More() {
		record, err := decodeRecord(dec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(records), err)
		}
		records = append(records, record)
	}

	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}

	return records, nil
}

func decodeRecord(dec *json.Decoder) (models.Record, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	record := models.Record{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key token %v", tok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		record = append(record, models.Field{Name: name, Value: value})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}

	return record, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
