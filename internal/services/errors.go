package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("not found")
	ErrUnsupportedFormat     = errors.New("unsupported file format")
	ErrExtraction            = errors.New("failed to extract text from file")
	ErrGenerationUnavailable = errors.New("generation client not available")
	ErrGeneration            = errors.New("generation failed")
	ErrUnsafeQuery           = errors.New("unsafe query")
	ErrExecution             = errors.New("query execution failed")
)

// ExtractionError carries the cause of a failed document extraction. It never
// holds the document bytes.
type ExtractionError struct {
	Filename string
	Cause    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrExtraction, e.Filename, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction
}

// GateRule identifies which QueryGate check rejected a statement.
type GateRule string

const (
	RuleNotASelectStatement GateRule = "not_a_select_statement"
	RuleForbiddenKeyword    GateRule = "forbidden_keyword"
	RuleTableNotAllowed     GateRule = "table_not_allowed"
)

type UnsafeQueryError struct {
	Rule   GateRule
	Detail string
}

func (e *UnsafeQueryError) Error() string {
	return fmt.Sprintf("%s (%s): %s", ErrUnsafeQuery, e.Rule, e.Detail)
}

func (e *UnsafeQueryError) Is(target error) bool {
	return target == ErrUnsafeQuery
}
