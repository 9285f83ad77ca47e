package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/interview-prep-agent/internal/schemas"
	"github.com/jonathan/interview-prep-agent/internal/types"
)

// ListResumes fetches the user's resume collection. An absent or malformed
// collection degrades to an empty list with a developer log; list screens
// never alert on a bad payload.
func (c *Client) ListResumes(ctx context.Context) ([]types.Resume, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/v1/resumes", "list resumes", nil)
	if err != nil {
		return nil, err
	}
	if isAbsent(data) {
		return []types.Resume{}, nil
	}

	if err := schemas.ValidateResumeList(data); err != nil {
		c.logger.Warn("resume list payload failed validation, treating as empty", "error", err)
		return []types.Resume{}, nil
	}

	var resumes []types.Resume
	if err := json.Unmarshal(data, &resumes); err != nil {
		c.logger.Warn("resume list payload failed to decode, treating as empty", "error", err)
		return []types.Resume{}, nil
	}
	return resumes, nil
}

// DeleteResume deletes a resume by id.
func (c *Client) DeleteResume(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/resumes/%d", id), "delete resume", nil)
	return err
}

// AnalyzeResume runs the backend analysis for a resume. A success response
// with no payload is a failure: the analyze flow requires data.
func (c *Client) AnalyzeResume(ctx context.Context, id int64) (*types.AnalysisResult, error) {
	data, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/resumes/%d/analyze", id), "analyze resume", nil)
	if err != nil {
		return nil, err
	}
	if isAbsent(data) {
		return nil, &Error{Op: "analyze resume"}
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis result: %w", err)
	}
	return &result, nil
}

// ListTailoredResumes fetches the tailored variants of a resume. Lenient on
// payload shape like ListResumes.
func (c *Client) ListTailoredResumes(ctx context.Context, resumeID int64) ([]types.TailoredResume, error) {
	data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/resumes/%d/tailored", resumeID), "list tailored resumes", nil)
	if err != nil {
		return nil, err
	}
	if isAbsent(data) {
		return []types.TailoredResume{}, nil
	}

	var tailored []types.TailoredResume
	if err := json.Unmarshal(data, &tailored); err != nil {
		c.logger.Warn("tailored resume payload failed to decode, treating as empty", "error", err)
		return []types.TailoredResume{}, nil
	}
	return tailored, nil
}
