package models

import "github.com/google/uuid"

type EvaluateRequest struct {
	ApplicationID string `json:"application_id" validate:"required,uuid"`
}

// EvaluationAck is the minimal acknowledgment returned after an evaluation.
type EvaluationAck struct {
	RelevanceScore int     `json:"relevance_score"`
	Verdict        Verdict `json:"verdict"`
}

// EvaluateResponse carries the score only on success; 0 is a valid score.
type EvaluateResponse struct {
	OK             bool    `json:"ok"`
	RelevanceScore *int    `json:"relevance_score,omitempty"`
	Verdict        Verdict `json:"verdict,omitempty"`
	Error          string  `json:"error,omitempty"`
}

type QueryRequest struct {
	Query string `json:"query" validate:"required,max=1000"`
}

type QueryResponse struct {
	OK      bool     `json:"ok"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

type ApplyRequest struct {
	JobID     string `form:"job_id" validate:"required,uuid"`
	StudentID string `form:"student_id" validate:"omitempty,uuid"`
	Name      string `form:"name" validate:"required"`
	Email     string `form:"email" validate:"required,email"`
	Phone     string `form:"phone" validate:"required"`
	College   string `form:"college"`
}

type ApplyResponse struct {
	OK            bool             `json:"ok"`
	ApplicationID uuid.UUID        `json:"application_id"`
	Evaluation    EvaluateResponse `json:"evaluation"`
}

type ApplicationResponse struct {
	OK          bool         `json:"ok"`
	Application *Application `json:"application"`
	Student     *Student     `json:"students,omitempty"`
	Job         *Job         `json:"jobs,omitempty"`
}

type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
