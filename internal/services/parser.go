package services

import (
	"encoding/json"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"alfredoptarigan/hiring-portal/internal/models"
)

var codeFencePattern = regexp.MustCompile("```[A-Za-z]*")

// StripCodeFences removes Markdown code-fence markers and surrounding whitespace.
func StripCodeFences(text string) string {
	return strings.TrimSpace(codeFencePattern.ReplaceAllString(text, ""))
}

// rawEvaluation mirrors the evaluation JSON with every field optional so that
// missing fields can be told apart from empty ones.
type rawEvaluation struct {
	Skills         *[]string       `json:"skills"`
	KeyProjects    *[]string       `json:"key_projects"`
	Certifications *[]string       `json:"certifications"`
	Experience     *string         `json:"experience"`
	Summary        *string         `json:"summary"`
	RelevanceScore json.RawMessage `json:"relevance_score"`
	Verdict        *string         `json:"verdict"`
	StrongPoints   *[]string       `json:"strong_points"`
	WeakPoints     *[]string       `json:"weak_points"`
}

// ParseEvaluation decodes a generator reply into an EvaluationResult. It never
// fails: undecodable replies yield models.FallbackResult and fellBack is true.
// A field of the wrong JSON type makes the whole reply undecodable; only
// relevance_score is read leniently.
// The verdict is always derived from the clamped score.
func ParseEvaluation(raw string) (result models.EvaluationResult, fellBack bool) {
	cleaned := StripCodeFences(raw)

	var parsed rawEvaluation
	if cleaned == "null" {
		log.Printf("⚠️  Evaluation reply is JSON null, using fallback result. Raw response: %s", raw)
		return models.FallbackResult(), true
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		log.Printf("⚠️  Failed to parse evaluation reply: %v. Raw response: %s", err, raw)
		return models.FallbackResult(), true
	}

	score := models.ClampScore(parseScore(parsed.RelevanceScore))
	verdict := models.VerdictForScore(score)
	if parsed.Verdict != nil && *parsed.Verdict != "" && models.Verdict(*parsed.Verdict) != verdict {
		log.Printf("⚠️  Generator verdict %q disagrees with score %d, using %q", *parsed.Verdict, score, verdict)
	}

	return models.EvaluationResult{
		Skills:            listOrEmpty(parsed.Skills),
		KeyProjects:       listOrEmpty(parsed.KeyProjects),
		Certifications:    listOrEmpty(parsed.Certifications),
		ExperienceSummary: stringOrEmpty(parsed.Experience),
		CandidateSummary:  stringOrEmpty(parsed.Summary),
		RelevanceScore:    score,
		Verdict:           verdict,
		StrongPoints:      listOrEmpty(parsed.StrongPoints),
		WeakPoints:        listOrEmpty(parsed.WeakPoints),
	}, false
}

// ParseSQL strips fences and whitespace from a generator reply. Anything else
// wrong with the statement is left for the query gate to reject.
func ParseSQL(raw string) string {
	return StripCodeFences(raw)
}

// parseScore accepts a JSON number or a numeric string, rounding fractions.
// Anything else yields the default score.
func parseScore(raw json.RawMessage) int {
	if len(raw) == 0 || string(raw) == "null" {
		return models.DefaultRelevanceScore
	}

	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return roundScore(number)
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		if number, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil && !math.IsNaN(number) {
			return roundScore(number)
		}
	}

	log.Printf("⚠️  Unusable relevance_score %s, defaulting to %d", string(raw), models.DefaultRelevanceScore)
	return models.DefaultRelevanceScore
}

func roundScore(f float64) int {
	f = math.Max(models.MinRelevanceScore, math.Min(models.MaxRelevanceScore, f))
	return int(math.Round(f))
}

func listOrEmpty(list *[]string) []string {
	if list == nil || *list == nil {
		return []string{}
	}
	return *list
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
