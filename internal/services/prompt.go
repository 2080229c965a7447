package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/hiring-portal/internal/models"
)

// Character budgets applied before text is sent to the generation client.
const (
	MaxJobRequirementsChars = 2000
	MaxResumeChars          = 3000
)

const EvaluationSystemInstruction = "You are an expert HR analyst. Analyze resumes against job requirements " +
	"and provide structured JSON output. Be critical and harsh, and base every score on evidence found in the resume."

const TranslationSystemInstruction = "You are an expert SQL developer. Translate natural language questions " +
	"into a single read-only SQL query for a hiring portal database."

// HiringPortalSchema lists the only tables and columns a translated query may use.
const HiringPortalSchema = `- students: id, user_id, full_name, email, phone, college, created_at
- jobs: id, title, company, location, type, level, salary, description, requirements, benefits, deadline, status, posted_date, created_by, created_at
- applications: id, student_id, job_id, resume_url, relevance_score, verdict, strong_points, weak_points, skills, key_projects, certifications, experience, summary, college, applied_for, created_at`

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildApplicationContext assembles the bounded evaluation context. The job's
// description and requirements are joined before truncation.
func (pb *PromptBuilder) BuildApplicationContext(jobTitle, jobDescription, jobRequirements, resumeText string) models.ApplicationContext {
	requirements := strings.TrimSpace(jobDescription + " " + jobRequirements)

	return models.ApplicationContext{
		ResumeText:          truncateChars(resumeText, MaxResumeChars),
		JobTitle:            jobTitle,
		JobRequirementsText: truncateChars(requirements, MaxJobRequirementsChars),
	}
}

// BuildResumeEvaluationPrompt creates the prompt for scoring a resume against a job
func (pb *PromptBuilder) BuildResumeEvaluationPrompt(jobTitle, jobDescription, jobRequirements, resumeText string) string {
	return pb.BuildEvaluationPromptFromContext(
		pb.BuildApplicationContext(jobTitle, jobDescription, jobRequirements, resumeText),
	)
}

func (pb *PromptBuilder) BuildEvaluationPromptFromContext(ac models.ApplicationContext) string {
	return fmt.Sprintf(`Analyze this resume against the job requirements and provide a comprehensive evaluation in JSON format.

Job Title: %s
Job Description: %s

Resume Text: %s

Return your response in the following JSON format:
{
  "skills": ["skill1", "skill2", "skill3"],
  "key_projects": ["project1", "project2", "project3"],
  "certifications": ["cert1", "cert2"],
  "experience": "X years of experience",
  "summary": "Brief 2-3 line summary of the candidate",
  "relevance_score": 85,
  "verdict": "High",
  "strong_points": ["point1", "point2", "point3"],
  "weak_points": ["point1", "point2", "point3"]
}

Guidelines:
- Critically analyse the resume against the job requirements
- Be very critical and harsh when assigning the relevance score
- Reduce the score significantly for skill mismatch, insufficient experience, weak projects or low grades
- relevance_score: integer 0-100 based on overall match
- verdict: "High" (75+), "Medium" (50-74), "Low" (<50)
- Extract actual skills, projects and certifications from the resume
- Provide specific strong and weak points based on the job requirements
- Be objective and professional

Return only valid JSON, no additional text.`,
		ac.JobTitle, ac.JobRequirementsText, ac.ResumeText)
}

// BuildSQLTranslationPrompt creates the prompt for turning a question into SQL
func (pb *PromptBuilder) BuildSQLTranslationPrompt(naturalLanguageQuery, schemaDescription string) string {
	return fmt.Sprintf(`Translate this natural language query to SQL for a hiring portal database.

Query: %q

Available tables and columns:
%s

Rules:
1. Only SELECT statements are allowed
2. No mutations (INSERT, UPDATE, DELETE)
3. No dangerous keywords (DROP, ALTER, CREATE, TRUNCATE)
4. Single statement only
5. Do not use JOIN
6. Return only the SQL query, no explanation or additional text

SQL Query:`, naturalLanguageQuery, schemaDescription)
}

// truncateChars keeps at most n characters (runes) of s.
func truncateChars(s string, n int) string {
	if n <= 0 {
		return ""
	}

	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}

	return s
}
