// Package practice implements the AI practice workflow: a generated question
// batch with per-question STAR stories, free-text answers, practice timers,
// and a history tab over previously saved responses.
package practice

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/interview-prep-agent/internal/api"
	"github.com/jonathan/interview-prep-agent/internal/prompt"
	"github.com/jonathan/interview-prep-agent/internal/types"
)

// ViewState is the primary tab's render state.
type ViewState int

const (
	StateLoading ViewState = iota
	StateEmpty
	StateLoaded
)

// Tab identifies the active tab.
type Tab int

const (
	TabPractice Tab = iota
	TabHistory
)

// Gateway is the slice of the API client this screen consumes.
type Gateway interface {
	GeneratePracticeQuestions(ctx context.Context, prepID int64, count int) ([]types.PracticeQuestion, error)
	GenerateSTARStory(ctx context.Context, prepID int64, questionText string) (*types.STARStory, error)
	SavePracticeResponse(ctx context.Context, req types.SavePracticeRequest) (*types.PracticeResponse, error)
	ListPracticeResponses(ctx context.Context, prepID int64) ([]types.PracticeResponse, error)
}

// Controller owns the practice screen state for one interview prep. All
// per-question state is keyed by exact question text, which survives list
// reordering.
type Controller struct {
	gw     Gateway
	ui     prompt.UI
	logger *slog.Logger

	prepID        int64
	questionCount int
	now           func() time.Time

	closed    bool
	state     ViewState
	tab       Tab
	questions []types.PracticeQuestion

	expanded        string
	stories         map[string]*types.STARStory
	answers         map[string]string
	saved           map[string]bool
	timerStart      map[string]time.Time
	generatingStory map[string]bool

	history []types.PracticeResponse
}

// New creates the controller for an interview prep's practice screen.
func New(gw Gateway, ui prompt.UI, prepID int64, questionCount int, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		gw:              gw,
		ui:              ui,
		logger:          logger,
		prepID:          prepID,
		questionCount:   questionCount,
		now:             time.Now,
		state:           StateLoading,
		stories:         make(map[string]*types.STARStory),
		answers:         make(map[string]string),
		saved:           make(map[string]bool),
		timerStart:      make(map[string]time.Time),
		generatingStory: make(map[string]bool),
	}
}

// Load eagerly generates the question batch and fetches saved responses in
// parallel, then merges responses into local state by exact question text.
// A saved response with no matching question is silently dropped. A failed
// response fetch degrades to no saved state with a developer log; a failed
// question generation empties the screen with an alert.
func (c *Controller) Load(ctx context.Context) {
	var (
		questions []types.PracticeQuestion
		responses []types.PracticeResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		questions, err = c.gw.GeneratePracticeQuestions(gctx, c.prepID, c.questionCount)
		return err
	})
	g.Go(func() error {
		fetched, err := c.gw.ListPracticeResponses(gctx, c.prepID)
		if err != nil {
			c.logger.Warn("practice response fetch failed, continuing without saved state", "error", err)
			return nil
		}
		responses = fetched
		return nil
	})
	err := g.Wait()

	if c.closed {
		return
	}
	if err != nil {
		c.state = StateEmpty
		c.ui.Alert("Error", api.MessageOr(err, "Failed to generate practice questions. Please try again."))
		return
	}

	c.questions = questions
	c.mergeSavedResponses(responses)
	c.state = StateLoaded
}

// mergeSavedResponses folds saved records into per-question state. Matching
// is exact text; anything else is dropped without error.
func (c *Controller) mergeSavedResponses(responses []types.PracticeResponse) {
	byText := make(map[string]bool, len(c.questions))
	for _, q := range c.questions {
		byText[q.Question] = true
	}

	for _, resp := range responses {
		if !byText[resp.QuestionText] {
			continue
		}
		c.saved[resp.QuestionText] = true
		if resp.WrittenAnswer != "" {
			c.answers[resp.QuestionText] = resp.WrittenAnswer
		}
		if resp.STARStory != nil {
			c.stories[resp.QuestionText] = resp.STARStory
		}
	}
}

// State returns the primary tab's render state.
func (c *Controller) State() ViewState { return c.state }

// ActiveTab returns the active tab.
func (c *Controller) ActiveTab() Tab { return c.tab }

// Questions returns the generated batch.
func (c *Controller) Questions() []types.PracticeQuestion { return c.questions }

// ToggleQuestion applies the single-expand reducer. Expanding a question
// with no cached STAR story triggers generation; a cached story is never
// regenerated, even after a collapse/expand cycle.
func (c *Controller) ToggleQuestion(ctx context.Context, questionText string) {
	if c.expanded == questionText {
		c.expanded = ""
		return
	}
	c.expand(ctx, questionText)
}

func (c *Controller) expand(ctx context.Context, questionText string) {
	question := c.findQuestion(questionText)
	if question == nil {
		return
	}
	c.expanded = questionText

	if c.stories[questionText] != nil || c.generatingStory[questionText] {
		return
	}
	c.generatingStory[questionText] = true

	story, err := c.gw.GenerateSTARStory(ctx, c.prepID, questionText)
	if c.closed {
		return
	}
	delete(c.generatingStory, questionText)

	if err != nil || story == nil {
		c.ui.Alert("Generation Failed", api.MessageOr(err, "Failed to generate a STAR story. Please try again."))
		return
	}
	c.stories[questionText] = story
}

// Expanded returns the expanded question text, or "".
func (c *Controller) Expanded() string { return c.expanded }

// Story returns the cached STAR story for a question, if any.
func (c *Controller) Story(questionText string) *types.STARStory {
	return c.stories[questionText]
}

// IsGeneratingStory reports whether story generation is pending for a question.
func (c *Controller) IsGeneratingStory(questionText string) bool {
	return c.generatingStory[questionText]
}

// FocusAnswer starts the practice timer on first focus of the answer field.
// Subsequent focus events while the timer runs do not restart it.
func (c *Controller) FocusAnswer(questionText string) {
	if _, running := c.timerStart[questionText]; running {
		return
	}
	c.timerStart[questionText] = c.now()
}

// TimerRunning reports whether a timer was started for a question.
func (c *Controller) TimerRunning(questionText string) bool {
	_, running := c.timerStart[questionText]
	return running
}

// SetAnswer updates the free-text answer. Any edit reverts the question to
// unsaved, even if it had been saved before.
func (c *Controller) SetAnswer(questionText, text string) {
	c.answers[questionText] = text
	delete(c.saved, questionText)
}

// Answer returns the current free-text answer for a question.
func (c *Controller) Answer(questionText string) string { return c.answers[questionText] }

// IsSaved reports whether a question's current state has been saved.
func (c *Controller) IsSaved(questionText string) bool { return c.saved[questionText] }

// CanSave reports whether the save action is offered: there must be a
// generated STAR story or a non-empty free-text answer.
func (c *Controller) CanSave(questionText string) bool {
	return c.stories[questionText] != nil || strings.TrimSpace(c.answers[questionText]) != ""
}

// Save persists the question's practice state. The payload carries a
// whole-second duration only when a timer was started. On success the item
// is marked saved and its timer cleared; on failure the user's input stays
// intact for retry.
func (c *Controller) Save(ctx context.Context, questionText string) bool {
	if !c.CanSave(questionText) {
		return false
	}

	req := types.SavePracticeRequest{
		InterviewPrepID: c.prepID,
		QuestionText:    questionText,
		STARStory:       c.stories[questionText],
		WrittenAnswer:   c.answers[questionText],
	}
	if question := c.findQuestion(questionText); question != nil {
		req.Category = question.Category
	}
	if start, running := c.timerStart[questionText]; running {
		seconds := int(c.now().Sub(start).Seconds())
		req.DurationSeconds = &seconds
	}

	_, err := c.gw.SavePracticeResponse(ctx, req)
	if c.closed {
		return false
	}
	if err != nil {
		c.ui.Alert("Error", api.MessageOr(err, "Failed to save your response. Please try again."))
		return false
	}

	c.saved[questionText] = true
	delete(c.timerStart, questionText)
	return true
}

// SwitchTab activates a tab. The history tab re-fetches its collection every
// time it becomes active; it is not cached across switches. A failed history
// fetch degrades to an empty list with a developer log.
func (c *Controller) SwitchTab(ctx context.Context, tab Tab) {
	c.tab = tab
	if tab != TabHistory {
		return
	}

	history, err := c.gw.ListPracticeResponses(ctx, c.prepID)
	if c.closed {
		return
	}
	if err != nil {
		c.logger.Warn("practice history fetch failed, showing empty history", "error", err)
		history = nil
	}
	c.history = history
}

// History returns the history tab's collection.
func (c *Controller) History() []types.PracticeResponse { return c.history }

// PracticeAgain jumps from a history item back to the practice tab. When the
// item's question text exactly matches a generated question it is expanded
// there; a non-match just switches tabs.
func (c *Controller) PracticeAgain(ctx context.Context, questionText string) {
	c.tab = TabPractice
	if c.findQuestion(questionText) == nil {
		return
	}
	c.expand(ctx, questionText)
}

// Close marks the screen as unmounted.
func (c *Controller) Close() { c.closed = true }

func (c *Controller) findQuestion(questionText string) *types.PracticeQuestion {
	for i := range c.questions {
		if c.questions[i].Question == questionText {
			return &c.questions[i]
		}
	}
	return nil
}
