package services

import (
	"fmt"
	"strings"
)

// QueryGate decides whether a generated statement may reach the query engine.
// The checks are plain substring tests, not a SQL parser: a keyword inside a
// string literal is rejected, and a table name appearing anywhere satisfies the
// allowlist. The read-only stored function behind the executor is the second line.
type QueryGate interface {
	Validate(sql string) error
}

var (
	forbiddenKeywords = []string{"DROP", "DELETE", "INSERT", "UPDATE", "ALTER", "CREATE", "TRUNCATE"}
	allowedTables     = []string{"students", "jobs", "applications"}
)

type queryGate struct{}

func NewQueryGate() QueryGate {
	return &queryGate{}
}

// Validate implements QueryGate. Checks run in order and stop at the first
// violation: statement shape, forbidden keywords, table allowlist.
func (g *queryGate) Validate(sql string) error {
	upper := strings.ToUpper(strings.TrimSpace(sql))

	if !strings.HasPrefix(upper, "SELECT") {
		return &UnsafeQueryError{
			Rule:   RuleNotASelectStatement,
			Detail: "only SELECT queries are allowed",
		}
	}

	for _, keyword := range forbiddenKeywords {
		if strings.Contains(upper, keyword) {
			return &UnsafeQueryError{
				Rule:   RuleForbiddenKeyword,
				Detail: fmt.Sprintf("dangerous keyword %s detected", keyword),
			}
		}
	}

	lower := strings.ToLower(sql)
	for _, table := range allowedTables {
		if strings.Contains(lower, table) {
			return nil
		}
	}

	return &UnsafeQueryError{
		Rule:   RuleTableNotAllowed,
		Detail: fmt.Sprintf("query must use one of the tables: %s", strings.Join(allowedTables, ", ")),
	}
}
