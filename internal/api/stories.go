package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/interview-prep-agent/internal/types"
)

// ListStories fetches the user's STAR stories. Lenient on payload shape.
func (c *Client) ListStories(ctx context.Context) ([]types.STARStory, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/v1/star-stories", "list stories", nil)
	if err != nil {
		return nil, err
	}
	if isAbsent(data) {
		return []types.STARStory{}, nil
	}

	var stories []types.STARStory
	if err := json.Unmarshal(data, &stories); err != nil {
		c.logger.Warn("story list payload failed to decode, treating as empty", "error", err)
		return []types.STARStory{}, nil
	}
	return stories, nil
}

// CreateStory saves a user-authored STAR story.
func (c *Client) CreateStory(ctx context.Context, req types.CreateStoryRequest) (*types.STARStory, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/v1/star-stories", "create story", req)
	if err != nil {
		return nil, err
	}
	if isAbsent(data) {
		return nil, &Error{Op: "create story"}
	}

	var story types.STARStory
	if err := json.Unmarshal(data, &story); err != nil {
		return nil, fmt.Errorf("failed to decode created story: %w", err)
	}
	return &story, nil
}

// DeleteStory deletes a STAR story by id.
func (c *Client) DeleteStory(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/star-stories/%d", id), "delete story", nil)
	return err
}

// AnalyzeStory returns the backend's structured feedback for a story.
func (c *Client) AnalyzeStory(ctx context.Context, id int64) (*types.StoryAnalysis, error) {
	data, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/star-stories/%d/analyze", id), "analyze story", nil)
	if err != nil {
		return nil, err
	}
	if isAbsent(data) {
		return nil, &Error{Op: "analyze story"}
	}

	var analysis types.StoryAnalysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode story analysis: %w", err)
	}
	return &analysis, nil
}

// SuggestStoryImprovements returns improvement suggestions for a story.
func (c *Client) SuggestStoryImprovements(ctx context.Context, id int64) ([]string, error) {
	data, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/star-stories/%d/improvements", id), "suggest story improvements", nil)
	if err != nil {
		return nil, err
	}
	if isAbsent(data) {
		return nil, &Error{Op: "suggest story improvements"}
	}

	var suggestions []string
	if err := json.Unmarshal(data, &suggestions); err != nil {
		return nil, fmt.Errorf("failed to decode improvement suggestions: %w", err)
	}
	return suggestions, nil
}

// GenerateStoryVariations returns alternate tellings of a story.
func (c *Client) GenerateStoryVariations(ctx context.Context, id int64) ([]types.StoryVariation, error) {
	data, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/star-stories/%d/variations", id), "generate story variations", nil)
	if err != nil {
		return nil, err
	}
	if isAbsent(data) {
		return nil, &Error{Op: "generate story variations"}
	}

	var variations []types.StoryVariation
	if err := json.Unmarshal(data, &variations); err != nil {
		return nil, fmt.Errorf("failed to decode story variations: %w", err)
	}
	return variations, nil
}
