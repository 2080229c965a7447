package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/hiring-portal/internal/models"
)

const fencedEvaluation = "```json\n" + `{
  "skills": ["Go", "PostgreSQL"],
  "key_projects": ["Payments API"],
  "certifications": ["CKA"],
  "experience": "4 years of experience",
  "summary": "Backend engineer focused on APIs.",
  "relevance_score": 82,
  "verdict": "High",
  "strong_points": ["Strong Go background"],
  "weak_points": ["No frontend work"]
}` + "\n```"

func TestParseEvaluation_FencedPayload(t *testing.T) {
	result, fellBack := ParseEvaluation(fencedEvaluation)

	assert.False(t, fellBack)
	assert.Equal(t, models.EvaluationResult{
		Skills:            []string{"Go", "PostgreSQL"},
		KeyProjects:       []string{"Payments API"},
		Certifications:    []string{"CKA"},
		ExperienceSummary: "4 years of experience",
		CandidateSummary:  "Backend engineer focused on APIs.",
		RelevanceScore:    82,
		Verdict:           models.VerdictHigh,
		StrongPoints:      []string{"Strong Go background"},
		WeakPoints:        []string{"No frontend work"},
	}, result)
}

func TestParseEvaluation_Fallback(t *testing.T) {
	inputs := []string{
		"not json",
		"",
		"```json\n```",
		"null",
		`["a", "b"]`,
		`{"skills": "Go"}`,
		`{"relevance_score": 90, "skills": ["Go"], "experience": 3}`,
		`{"relevance_score": 90, "skills": ["Go"], "verdict": 1}`,
		`{"relevance_score": 90, "summary": ["Go developer"]}`,
		`{"relevance_score": 80} trailing text`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			result, fellBack := ParseEvaluation(input)
			assert.True(t, fellBack)
			assert.Equal(t, models.FallbackResult(), result)
		})
	}
}

func TestParseEvaluation_MissingFieldsUseDefaults(t *testing.T) {
	result, fellBack := ParseEvaluation(`{"summary": "Short resume"}`)

	assert.False(t, fellBack)
	assert.Equal(t, "Short resume", result.CandidateSummary)
	assert.Equal(t, 50, result.RelevanceScore)
	assert.Equal(t, models.VerdictMedium, result.Verdict)
	assert.Equal(t, []string{}, result.Skills)
	assert.Equal(t, []string{}, result.KeyProjects)
	assert.Equal(t, []string{}, result.Certifications)
	assert.Equal(t, []string{}, result.StrongPoints)
	assert.Equal(t, []string{}, result.WeakPoints)
}

func TestParseEvaluation_Score(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		expectedScore   int
		expectedVerdict models.Verdict
	}{
		{name: "integer", input: `{"relevance_score": 49}`, expectedScore: 49, expectedVerdict: models.VerdictLow},
		{name: "fraction rounds", input: `{"relevance_score": 74.6}`, expectedScore: 75, expectedVerdict: models.VerdictHigh},
		{name: "numeric string", input: `{"relevance_score": " 60 "}`, expectedScore: 60, expectedVerdict: models.VerdictMedium},
		{name: "above range clamps", input: `{"relevance_score": 140}`, expectedScore: 100, expectedVerdict: models.VerdictHigh},
		{name: "below range clamps", input: `{"relevance_score": -5}`, expectedScore: 0, expectedVerdict: models.VerdictLow},
		{name: "null defaults", input: `{"relevance_score": null}`, expectedScore: 50, expectedVerdict: models.VerdictMedium},
		{name: "word defaults", input: `{"relevance_score": "high"}`, expectedScore: 50, expectedVerdict: models.VerdictMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, fellBack := ParseEvaluation(tt.input)
			assert.False(t, fellBack)
			assert.Equal(t, tt.expectedScore, result.RelevanceScore)
			assert.Equal(t, tt.expectedVerdict, result.Verdict)
		})
	}
}

func TestParseEvaluation_VerdictDerivedFromScore(t *testing.T) {
	result, fellBack := ParseEvaluation(`{"relevance_score": 30, "verdict": "High"}`)

	assert.False(t, fellBack)
	assert.Equal(t, models.VerdictLow, result.Verdict)
}

func TestParseSQL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "SELECT * FROM jobs", expected: "SELECT * FROM jobs"},
		{name: "sql fence", input: "```sql\nSELECT id FROM students\n```", expected: "SELECT id FROM students"},
		{name: "bare fence and whitespace", input: "  ```\n SELECT 1 FROM jobs \n```  ", expected: "SELECT 1 FROM jobs"},
		{name: "explanation kept for the gate", input: "Here is the query: SELECT * FROM jobs", expected: "Here is the query: SELECT * FROM jobs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSQL(tt.input))
		})
	}
}
