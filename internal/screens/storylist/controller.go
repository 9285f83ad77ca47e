// Package storylist implements the STAR story list screen: fetch on focus,
// create, confirmed delete, and per-story analysis actions.
package storylist

import (
	"context"
	"log/slog"

	"github.com/jonathan/interview-prep-agent/internal/api"
	"github.com/jonathan/interview-prep-agent/internal/prompt"
	"github.com/jonathan/interview-prep-agent/internal/types"
)

// ViewState is the screen's render state.
type ViewState int

const (
	StateLoading ViewState = iota
	StateEmpty
	StateLoaded
)

// Gateway is the slice of the API client this screen consumes.
type Gateway interface {
	ListStories(ctx context.Context) ([]types.STARStory, error)
	CreateStory(ctx context.Context, req types.CreateStoryRequest) (*types.STARStory, error)
	DeleteStory(ctx context.Context, id int64) error
	AnalyzeStory(ctx context.Context, id int64) (*types.StoryAnalysis, error)
	SuggestStoryImprovements(ctx context.Context, id int64) ([]string, error)
	GenerateStoryVariations(ctx context.Context, id int64) ([]types.StoryVariation, error)
}

// Controller owns the story list screen state.
type Controller struct {
	gw     Gateway
	ui     prompt.UI
	logger *slog.Logger

	closed  bool
	state   ViewState
	stories []types.STARStory
	busy    map[int64]bool
}

// New creates the controller in its loading state.
func New(gw Gateway, ui prompt.UI, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		gw:     gw,
		ui:     ui,
		logger: logger,
		state:  StateLoading,
		busy:   make(map[int64]bool),
	}
}

// Load fetches the collection. A failed fetch degrades to the empty state
// with a developer log, same policy as every list screen.
func (c *Controller) Load(ctx context.Context) {
	stories, err := c.gw.ListStories(ctx)
	if c.closed {
		return
	}
	if err != nil {
		c.logger.Warn("story list fetch failed, showing empty state", "error", err)
		stories = nil
	}

	c.stories = stories
	if len(c.stories) == 0 {
		c.state = StateEmpty
	} else {
		c.state = StateLoaded
	}
}

// State returns the current render state.
func (c *Controller) State() ViewState { return c.state }

// Stories returns the loaded collection.
func (c *Controller) Stories() []types.STARStory { return c.stories }

// Create validates and saves a new story, prepending it to the list on
// success.
func (c *Controller) Create(ctx context.Context, req types.CreateStoryRequest) *types.STARStory {
	if err := req.Validate(); err != nil {
		c.ui.Alert("Error", "Please fill in the situation, task, action and result fields.")
		return nil
	}

	story, err := c.gw.CreateStory(ctx, req)
	if c.closed {
		return nil
	}
	if err != nil || story == nil {
		c.ui.Alert("Error", api.MessageOr(err, "Failed to save your story. Please try again."))
		return nil
	}

	c.stories = append([]types.STARStory{*story}, c.stories...)
	c.state = StateLoaded
	return story
}

// Delete removes a story after confirmation, optimistically on success.
func (c *Controller) Delete(ctx context.Context, id int64) bool {
	target := c.find(id)
	if target == nil {
		return false
	}

	label := target.Title
	if label == "" {
		label = "this story"
	}
	if !c.ui.Confirm("Delete Story", "Delete "+label+"? This cannot be undone.", "Delete") {
		return false
	}

	err := c.gw.DeleteStory(ctx, id)
	if c.closed {
		return false
	}
	if err != nil {
		c.ui.Alert("Error", api.MessageOr(err, "Failed to delete story. Please try again."))
		return false
	}

	kept := c.stories[:0]
	for _, s := range c.stories {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	c.stories = kept
	if len(c.stories) == 0 {
		c.state = StateEmpty
	}
	return true
}

// Analyze requests structured feedback for one story.
func (c *Controller) Analyze(ctx context.Context, id int64) *types.StoryAnalysis {
	if !c.beginAction(id) {
		return nil
	}

	analysis, err := c.gw.AnalyzeStory(ctx, id)
	if !c.endAction(id) {
		return nil
	}
	if err != nil || analysis == nil {
		c.ui.Alert("Analysis Failed", api.MessageOr(err, "Failed to analyze story. Please try again."))
		return nil
	}
	return analysis
}

// Improvements requests improvement suggestions for one story.
func (c *Controller) Improvements(ctx context.Context, id int64) []string {
	if !c.beginAction(id) {
		return nil
	}

	suggestions, err := c.gw.SuggestStoryImprovements(ctx, id)
	if !c.endAction(id) {
		return nil
	}
	if err != nil || len(suggestions) == 0 {
		c.ui.Alert("Error", api.MessageOr(err, "Failed to suggest improvements. Please try again."))
		return nil
	}
	return suggestions
}

// Variations requests alternate tellings of one story.
func (c *Controller) Variations(ctx context.Context, id int64) []types.StoryVariation {
	if !c.beginAction(id) {
		return nil
	}

	variations, err := c.gw.GenerateStoryVariations(ctx, id)
	if !c.endAction(id) {
		return nil
	}
	if err != nil || len(variations) == 0 {
		c.ui.Alert("Generation Failed", api.MessageOr(err, "Failed to generate variations. Please try again."))
		return nil
	}
	return variations
}

// IsBusy reports whether an action for the story is pending; the item's
// controls are disabled while true, other items stay interactive.
func (c *Controller) IsBusy(id int64) bool { return c.busy[id] }

// Close marks the screen as unmounted.
func (c *Controller) Close() { c.closed = true }

func (c *Controller) beginAction(id int64) bool {
	if c.busy[id] {
		return false
	}
	c.busy[id] = true
	return true
}

// endAction clears the busy flag and reports whether the screen is still
// mounted; callers must not touch state when it returns false.
func (c *Controller) endAction(id int64) bool {
	if c.closed {
		return false
	}
	delete(c.busy, id)
	return true
}

func (c *Controller) find(id int64) *types.STARStory {
	for i := range c.stories {
		if c.stories[i].ID == id {
			return &c.stories[i]
		}
	}
	return nil
}
