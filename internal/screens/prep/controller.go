// Package prep implements the interview-prep detail screen: lazy generation
// of the aggregate, a single-expand accordion over its sections, and a
// confirmed refresh that regenerates from scratch.
package prep

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonathan/interview-prep-agent/internal/api"
	"github.com/jonathan/interview-prep-agent/internal/prepcache"
	"github.com/jonathan/interview-prep-agent/internal/prompt"
	"github.com/jonathan/interview-prep-agent/internal/types"
)

// ViewState is the screen's render state.
type ViewState int

const (
	StateUninitialized ViewState = iota
	StateLoading
	StateEmpty
	StateLoaded
)

// Section identifies one accordion section of the aggregate.
type Section string

const (
	SectionCompanyProfile Section = "company_profile"
	SectionValuesCulture  Section = "values_and_culture"
	SectionStrategyNews   Section = "strategy_and_news"
	SectionRoleAnalysis   Section = "role_analysis"
	SectionPreparation    Section = "interview_preparation"
	SectionQuestionsToAsk Section = "questions_to_ask"
	SectionPositioning    Section = "candidate_positioning"
)

// sectionOrder is the fixed display order.
var sectionOrder = []Section{
	SectionCompanyProfile,
	SectionValuesCulture,
	SectionStrategyNews,
	SectionRoleAnalysis,
	SectionPreparation,
	SectionQuestionsToAsk,
	SectionPositioning,
}

// Gateway is the slice of the API client this screen consumes.
type Gateway interface {
	GetInterviewPrep(ctx context.Context, tailoredResumeID int64) (*types.InterviewPrep, error)
	GenerateInterviewPrep(ctx context.Context, tailoredResumeID int64) (*types.InterviewPrep, error)
	DeleteInterviewPrep(ctx context.Context, prepID int64) error
}

// Controller owns the interview-prep screen state for one tailored resume.
type Controller struct {
	gw     Gateway
	ui     prompt.UI
	cache  *prepcache.Store
	logger *slog.Logger

	tailoredResumeID int64

	closed         bool
	state          ViewState
	prep           *types.InterviewPrep
	expanded       Section
	completedTasks map[int]bool
}

// New creates the controller for a tailored resume's prep screen.
func New(gw Gateway, ui prompt.UI, cache *prepcache.Store, tailoredResumeID int64, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		gw:               gw,
		ui:               ui,
		cache:            cache,
		logger:           logger,
		tailoredResumeID: tailoredResumeID,
		state:            StateUninitialized,
		completedTasks:   make(map[int]bool),
	}
}

// Load resolves the aggregate: cache first, then the backend. No aggregate
// yet means the empty state with its Generate call-to-action.
func (c *Controller) Load(ctx context.Context) {
	c.state = StateLoading

	if cached, ok := c.cache.Get(c.tailoredResumeID); ok {
		c.prep = cached
		c.state = StateLoaded
		return
	}

	prep, err := c.gw.GetInterviewPrep(ctx, c.tailoredResumeID)
	if c.closed {
		return
	}
	if err != nil {
		c.state = StateEmpty
		c.ui.Alert("Error", api.MessageOr(err, "Failed to load interview prep. Please try again."))
		return
	}
	if prep == nil {
		c.state = StateEmpty
		return
	}

	c.cache.Put(c.tailoredResumeID, prep)
	c.prep = prep
	c.state = StateLoaded
}

// Generate requests generation from the empty state. Failure, including a
// success response with no aggregate, keeps the screen empty and alerts.
func (c *Controller) Generate(ctx context.Context) {
	if c.state != StateEmpty {
		return
	}

	prep, err := c.gw.GenerateInterviewPrep(ctx, c.tailoredResumeID)
	if c.closed {
		return
	}
	if err != nil || prep == nil {
		c.state = StateEmpty
		c.ui.Alert("Generation Failed", api.MessageOr(err, "Failed to generate interview prep. Please try again."))
		return
	}

	c.cache.Put(c.tailoredResumeID, prep)
	c.prep = prep
	c.state = StateLoaded
}

// Refresh discards the aggregate after confirmation and regenerates it.
func (c *Controller) Refresh(ctx context.Context) {
	if c.state != StateLoaded || c.prep == nil {
		return
	}
	if !c.ui.Confirm("Refresh Interview Prep",
		"Regenerate all preparation content? Your current content will be replaced.", "Refresh") {
		return
	}

	if err := c.gw.DeleteInterviewPrep(ctx, c.prep.ID); err != nil {
		if !c.closed {
			c.ui.Alert("Error", api.MessageOr(err, "Failed to refresh interview prep. Please try again."))
		}
		return
	}
	if c.closed {
		return
	}

	c.cache.Delete(c.tailoredResumeID)
	c.prep = nil
	c.expanded = ""
	c.completedTasks = make(map[int]bool)
	c.state = StateEmpty
	c.Generate(ctx)
}

// State returns the current render state.
func (c *Controller) State() ViewState { return c.state }

// Prep returns the loaded aggregate, or nil.
func (c *Controller) Prep() *types.InterviewPrep { return c.prep }

// PrepID returns the aggregate id once known. The AI practice entry points
// route on this id and do not depend on accordion state.
func (c *Controller) PrepID() (int64, bool) {
	if c.prep == nil {
		return 0, false
	}
	return c.prep.ID, true
}

// Toggle applies the single-expand accordion reducer: selecting the expanded
// section collapses it, selecting another replaces it.
func (c *Controller) Toggle(section Section) {
	if c.expanded == section {
		c.expanded = ""
		return
	}
	c.expanded = section
}

// Expanded returns the currently expanded section, or "" when collapsed.
func (c *Controller) Expanded() Section { return c.expanded }

// ToggleTask flips the local completion mark for a preparation task.
func (c *Controller) ToggleTask(index int) {
	if c.prep == nil || c.prep.InterviewPreparation == nil {
		return
	}
	if index < 0 || index >= len(c.prep.InterviewPreparation.Tasks) {
		return
	}
	if c.completedTasks[index] {
		delete(c.completedTasks, index)
	} else {
		c.completedTasks[index] = true
	}
}

// Subtitle derives a section header's status line from its backing data.
// Purely computed; never triggers a request.
func (c *Controller) Subtitle(section Section) string {
	if c.prep == nil {
		return ""
	}
	switch section {
	case SectionCompanyProfile:
		if c.prep.CompanyProfile != nil && c.prep.CompanyProfile.Name != "" {
			return c.prep.CompanyProfile.Name
		}
		return "Company overview"
	case SectionValuesCulture:
		n := 0
		if c.prep.ValuesAndCulture != nil {
			n = len(c.prep.ValuesAndCulture.CoreValues)
		}
		return fmt.Sprintf("%d core values identified", n)
	case SectionStrategyNews:
		n := 0
		if c.prep.StrategyAndNews != nil {
			n = len(c.prep.StrategyAndNews.RecentNews)
		}
		return fmt.Sprintf("%d recent updates", n)
	case SectionRoleAnalysis:
		n := 0
		if c.prep.RoleAnalysis != nil {
			n = len(c.prep.RoleAnalysis.KeyResponsibilities)
		}
		return fmt.Sprintf("%d key responsibilities", n)
	case SectionPreparation:
		total := 0
		if c.prep.InterviewPreparation != nil {
			total = len(c.prep.InterviewPreparation.Tasks)
		}
		return fmt.Sprintf("%d/%d tasks completed", len(c.completedTasks), total)
	case SectionQuestionsToAsk:
		return fmt.Sprintf("%d questions to ask", len(c.prep.QuestionsToAskInterviewer))
	case SectionPositioning:
		n := 0
		if c.prep.CandidatePositioning != nil {
			n = len(c.prep.CandidatePositioning.TalkingPoints)
		}
		return fmt.Sprintf("%d talking points", n)
	}
	return ""
}

// Close marks the screen as unmounted.
func (c *Controller) Close() { c.closed = true }

// VisibleSections derives which sections have backing data to render. Each
// section gates independently on its own field; an absent field suppresses
// the section instead of rendering placeholders.
func VisibleSections(prep *types.InterviewPrep) []Section {
	if prep == nil {
		return nil
	}

	present := map[Section]bool{
		SectionCompanyProfile: prep.CompanyProfile != nil,
		SectionValuesCulture:  prep.ValuesAndCulture != nil,
		SectionStrategyNews:   prep.StrategyAndNews != nil,
		SectionRoleAnalysis:   prep.RoleAnalysis != nil,
		SectionPreparation:    prep.InterviewPreparation != nil,
		SectionQuestionsToAsk: len(prep.QuestionsToAskInterviewer) > 0,
		SectionPositioning:    prep.CandidatePositioning != nil,
	}

	var visible []Section
	for _, s := range sectionOrder {
		if present[s] {
			visible = append(visible, s)
		}
	}
	return visible
}
