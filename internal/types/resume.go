// Package types provides type definitions for the backend data transfer objects
// consumed throughout the interview-prep client.
package types

import "time"

// Resume represents an uploaded resume as listed by the backend.
// Name and Email are only present when the backend managed to parse them.
type Resume struct {
	ID          int64  `json:"id"`
	Filename    string `json:"filename"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	SkillsCount int    `json:"skills_count"`
	UploadedAt  string `json:"uploaded_at"`
}

// UploadedTime parses the upload timestamp. The backend emits either RFC 3339
// or a bare date; anything unparseable sorts as the zero time.
func (r Resume) UploadedTime() time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, r.UploadedAt); err == nil {
			return t
		}
	}
	return time.Time{}
}

// TailoredResume is a job-targeted variant of a parent resume.
type TailoredResume struct {
	ID         int64  `json:"id"`
	ResumeID   int64  `json:"resume_id"`
	JobTitle   string `json:"job_title,omitempty"`
	Company    string `json:"company,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	MatchScore int    `json:"match_score,omitempty"`
}

// AnalysisResult is the structured scoring object returned by the resume
// analyze operation.
type AnalysisResult struct {
	OverallScore int      `json:"overall_score"`
	SkillsFound  []string `json:"skills_found,omitempty"`
	Strengths    []string `json:"strengths,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
	Summary      string   `json:"summary,omitempty"`
}
