package services

import (
	"context"
	"fmt"
	"log"

	"alfredoptarigan/hiring-portal/internal/models"
)

type QueryTranslator interface {
	Translate(ctx context.Context, naturalLanguageQuery string) (string, error)
	TranslateAndRun(ctx context.Context, naturalLanguageQuery string) (*models.QueryResult, error)
}

type queryTranslator struct {
	generator     GenerationClient
	promptBuilder *PromptBuilder
	gate          QueryGate
	executor      QueryExecutor
	temperature   float32
}

// NewQueryTranslator accepts a nil generator; every request then fails with
// ErrGenerationUnavailable.
func NewQueryTranslator(generator GenerationClient, gate QueryGate, executor QueryExecutor) QueryTranslator {
	return &queryTranslator{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		gate:          gate,
		executor:      executor,
		temperature:   DefaultTemperature,
	}
}

// Translate turns a question into a statement that has passed the gate.
// A rejected statement is returned as an UnsafeQueryError and never executed.
func (t *queryTranslator) Translate(ctx context.Context, naturalLanguageQuery string) (string, error) {
	if t.generator == nil {
		return "", ErrGenerationUnavailable
	}

	prompt := t.promptBuilder.BuildSQLTranslationPrompt(naturalLanguageQuery, HiringPortalSchema)

	log.Println("🤖 Translating question to SQL...")
	reply, err := t.generator.Generate(ctx, TranslationSystemInstruction, prompt, t.temperature)
	if err != nil {
		return "", fmt.Errorf("generating: %w", err)
	}

	sql := ParseSQL(reply)
	if err := t.gate.Validate(sql); err != nil {
		log.Printf("⚠️  Rejected generated SQL %q: %v", sql, err)
		return "", err
	}

	log.Printf("✅ Generated SQL passed the gate: %s", sql)
	return sql, nil
}

func (t *queryTranslator) TranslateAndRun(ctx context.Context, naturalLanguageQuery string) (*models.QueryResult, error) {
	sql, err := t.Translate(ctx, naturalLanguageQuery)
	if err != nil {
		return nil, err
	}

	result, err := t.executor.Run(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("executing: %w", err)
	}

	log.Printf("📊 Query returned %d rows", len(result.Rows))
	return result, nil
}
