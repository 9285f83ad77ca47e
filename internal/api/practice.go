package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/interview-prep-agent/internal/types"
)

// GeneratePracticeQuestions generates a batch of practice questions for an
// interview prep. The flow requires data: an empty batch is a failure.
func (c *Client) GeneratePracticeQuestions(ctx context.Context, prepID int64, count int) ([]types.PracticeQuestion, error) {
	path := fmt.Sprintf("/api/v1/interview-prep/%d/practice-questions", prepID)
	data, err := c.do(ctx, http.MethodPost, path, "generate practice questions", map[string]int{"count": count})
	if err != nil {
		return nil, err
	}
	if isAbsent(data) {
		return nil, &Error{Op: "generate practice questions"}
	}

	var questions []types.PracticeQuestion
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to decode practice questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, &Error{Op: "generate practice questions"}
	}
	return questions, nil
}

// GenerateSTARStory generates a STAR story answering the given question.
func (c *Client) GenerateSTARStory(ctx context.Context, prepID int64, questionText string) (*types.STARStory, error) {
	path := fmt.Sprintf("/api/v1/interview-prep/%d/star-story", prepID)
	data, err := c.do(ctx, http.MethodPost, path, "generate STAR story", map[string]string{"question": questionText})
	if err != nil {
		return nil, err
	}
	if isAbsent(data) {
		return nil, &Error{Op: "generate STAR story"}
	}

	var story types.STARStory
	if err := json.Unmarshal(data, &story); err != nil {
		return nil, fmt.Errorf("failed to decode STAR story: %w", err)
	}
	return &story, nil
}

// SavePracticeResponse creates or updates the practice record for a question.
// The backend matches on (prep id, question text).
func (c *Client) SavePracticeResponse(ctx context.Context, req types.SavePracticeRequest) (*types.PracticeResponse, error) {
	path := fmt.Sprintf("/api/v1/interview-prep/%d/practice-responses", req.InterviewPrepID)
	data, err := c.do(ctx, http.MethodPost, path, "save practice response", req)
	if err != nil {
		return nil, err
	}
	if isAbsent(data) {
		return nil, &Error{Op: "save practice response"}
	}

	var saved types.PracticeResponse
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("failed to decode saved response: %w", err)
	}
	return &saved, nil
}

// ListPracticeResponses fetches saved practice records for an interview prep.
// Lenient: absent or malformed collections degrade to empty.
func (c *Client) ListPracticeResponses(ctx context.Context, prepID int64) ([]types.PracticeResponse, error) {
	path := fmt.Sprintf("/api/v1/interview-prep/%d/practice-responses", prepID)
	data, err := c.do(ctx, http.MethodGet, path, "list practice responses", nil)
	if err != nil {
		return nil, err
	}
	if isAbsent(data) {
		return []types.PracticeResponse{}, nil
	}

	var responses []types.PracticeResponse
	if err := json.Unmarshal(data, &responses); err != nil {
		c.logger.Warn("practice response payload failed to decode, treating as empty", "error", err)
		return []types.PracticeResponse{}, nil
	}
	return responses, nil
}
