package models

type Verdict string

const (
	VerdictHigh   Verdict = "High"
	VerdictMedium Verdict = "Medium"
	VerdictLow    Verdict = "Low"
)

const (
	MinRelevanceScore     = 0
	MaxRelevanceScore     = 100
	DefaultRelevanceScore = 50

	highVerdictThreshold   = 75
	mediumVerdictThreshold = 50
)

// VerdictForScore maps a relevance score to its verdict: High at 75 and above,
// Medium from 50 to 74, Low below 50.
func VerdictForScore(score int) Verdict {
	switch {
	case score >= highVerdictThreshold:
		return VerdictHigh
	case score >= mediumVerdictThreshold:
		return VerdictMedium
	default:
		return VerdictLow
	}
}

// ClampScore bounds a score to [0, 100].
func ClampScore(score int) int {
	if score < MinRelevanceScore {
		return MinRelevanceScore
	}
	if score > MaxRelevanceScore {
		return MaxRelevanceScore
	}
	return score
}

// ApplicationContext is the per-request input assembled for a resume evaluation.
type ApplicationContext struct {
	ResumeText          string
	JobTitle            string
	JobRequirementsText string
}

type EvaluationResult struct {
	Skills            []string `json:"skills"`
	KeyProjects       []string `json:"key_projects"`
	Certifications    []string `json:"certifications"`
	ExperienceSummary string   `json:"experience"`
	CandidateSummary  string   `json:"summary"`
	RelevanceScore    int      `json:"relevance_score"`
	Verdict           Verdict  `json:"verdict"`
	StrongPoints      []string `json:"strong_points"`
	WeakPoints        []string `json:"weak_points"`
}

// FallbackResult is the record substituted when generator output cannot be parsed.
func FallbackResult() EvaluationResult {
	return EvaluationResult{
		Skills:            []string{},
		KeyProjects:       []string{},
		Certifications:    []string{},
		ExperienceSummary: "Unknown",
		CandidateSummary:  "Unable to analyze resume",
		RelevanceScore:    DefaultRelevanceScore,
		Verdict:           VerdictMedium,
		StrongPoints:      []string{},
		WeakPoints:        []string{},
	}
}
