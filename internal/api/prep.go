package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/interview-prep-agent/internal/schemas"
	"github.com/jonathan/interview-prep-agent/internal/types"
)

// GetInterviewPrep fetches the generated aggregate for a tailored resume.
// A nil aggregate with a nil error means nothing has been generated yet;
// that is the screen's empty state, not a failure.
func (c *Client) GetInterviewPrep(ctx context.Context, tailoredResumeID int64) (*types.InterviewPrep, error) {
	path := fmt.Sprintf("/api/v1/tailored-resumes/%d/interview-prep", tailoredResumeID)
	data, err := c.do(ctx, http.MethodGet, path, "get interview prep", nil)
	if err != nil {
		return nil, err
	}
	if isAbsent(data) {
		return nil, nil
	}
	return decodePrep(data)
}

// GenerateInterviewPrep asks the backend to generate the aggregate. The
// generation flow requires data: success with an empty payload is a failure.
func (c *Client) GenerateInterviewPrep(ctx context.Context, tailoredResumeID int64) (*types.InterviewPrep, error) {
	path := fmt.Sprintf("/api/v1/tailored-resumes/%d/interview-prep", tailoredResumeID)
	data, err := c.do(ctx, http.MethodPost, path, "generate interview prep", nil)
	if err != nil {
		return nil, err
	}
	if isAbsent(data) {
		return nil, &Error{Op: "generate interview prep"}
	}
	return decodePrep(data)
}

// DeleteInterviewPrep deletes a generated aggregate by its own id. The
// refresh flow deletes, then re-generates.
func (c *Client) DeleteInterviewPrep(ctx context.Context, prepID int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/interview-prep/%d", prepID), "delete interview prep", nil)
	return err
}

func decodePrep(data json.RawMessage) (*types.InterviewPrep, error) {
	if err := schemas.ValidateInterviewPrep(data); err != nil {
		return nil, fmt.Errorf("interview prep payload failed validation: %w", err)
	}
	var prep types.InterviewPrep
	if err := json.Unmarshal(data, &prep); err != nil {
		return nil, fmt.Errorf("failed to decode interview prep: %w", err)
	}
	return &prep, nil
}
