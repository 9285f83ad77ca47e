// Package resumelist implements the resume list screen: fetch on focus,
// local filter/sort, confirmed delete with optimistic removal, and a
// per-item analyze action.
package resumelist

import (
	"context"
	"log/slog"
	"sort"
	"strings"

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

// SortKey selects the list ordering. Unknown keys preserve input order.
type SortKey string

const (
	SortNewest SortKey = "newest"
	SortOldest SortKey = "oldest"
	SortName   SortKey = "name"
	SortSkills SortKey = "skills"
)

// Gateway is the slice of the API client this screen consumes.
type Gateway interface {
	ListResumes(ctx context.Context) ([]types.Resume, error)
	DeleteResume(ctx context.Context, id int64) error
	AnalyzeResume(ctx context.Context, id int64) (*types.AnalysisResult, error)
}

// Controller owns the resume list screen state.
type Controller struct {
	gw     Gateway
	ui     prompt.UI
	logger *slog.Logger

	closed    bool
	state     ViewState
	resumes   []types.Resume
	filter    string
	sortKey   SortKey
	analyzing map[int64]bool
}

// New creates the controller in its loading state.
func New(gw Gateway, ui prompt.UI, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		gw:        gw,
		ui:        ui,
		logger:    logger,
		state:     StateLoading,
		analyzing: make(map[int64]bool),
	}
}

// Load fetches the collection. Called on mount and on every focus event.
// A failed or malformed fetch degrades to the empty state with a developer
// log; the user never sees an alert for a bad list fetch.
func (c *Controller) Load(ctx context.Context) {
	resumes, err := c.gw.ListResumes(ctx)
	if c.closed {
		return
	}
	if err != nil {
		c.logger.Warn("resume list fetch failed, showing empty state", "error", err)
		resumes = nil
	}

	c.resumes = resumes
	if len(c.resumes) == 0 {
		c.state = StateEmpty
	} else {
		c.state = StateLoaded
	}
}

// State returns the current render state.
func (c *Controller) State() ViewState { return c.state }

// SetFilter sets the case-insensitive substring filter.
func (c *Controller) SetFilter(query string) { c.filter = query }

// SetSort sets the sort key.
func (c *Controller) SetSort(key SortKey) { c.sortKey = key }

// Visible returns the rendered collection: filter first, then sort.
func (c *Controller) Visible() []types.Resume {
	return Sort(Filter(c.resumes, c.filter), c.sortKey)
}

// Delete removes a resume after an interstitial confirmation. On success the
// item is removed from local state without a refetch; on failure the item
// stays and an error alert surfaces the server message or a fallback.
// Returns whether the item was deleted.
func (c *Controller) Delete(ctx context.Context, id int64) bool {
	target := c.find(id)
	if target == nil {
		return false
	}

	if !c.ui.Confirm("Delete Resume",
		"Delete \""+target.Filename+"\"? This cannot be undone.", "Delete") {
		return false
	}

	err := c.gw.DeleteResume(ctx, id)
	if c.closed {
		return false
	}
	if err != nil {
		c.ui.Alert("Error", api.MessageOr(err, "Failed to delete resume. Please try again."))
		return false
	}

	kept := c.resumes[:0]
	for _, r := range c.resumes {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	c.resumes = kept
	if len(c.resumes) == 0 {
		c.state = StateEmpty
	}
	return true
}

// Analyze runs the backend analysis for one item. While the call is pending
// the item's action is disabled; other items stay interactive. Returns the
// result for the caller to present, or nil on failure (already alerted).
func (c *Controller) Analyze(ctx context.Context, id int64) *types.AnalysisResult {
	if c.analyzing[id] {
		return nil
	}
	c.analyzing[id] = true

	result, err := c.gw.AnalyzeResume(ctx, id)
	if c.closed {
		return nil
	}
	delete(c.analyzing, id)

	if err != nil || result == nil {
		c.ui.Alert("Analysis Failed", api.MessageOr(err, "Failed to analyze resume. Please try again."))
		return nil
	}
	return result
}

// IsAnalyzing reports whether the analyze action for an item is pending.
func (c *Controller) IsAnalyzing(id int64) bool { return c.analyzing[id] }

// Close marks the screen as unmounted. Calls resolving afterwards must not
// mutate state.
func (c *Controller) Close() { c.closed = true }

func (c *Controller) find(id int64) *types.Resume {
	for i := range c.resumes {
		if c.resumes[i].ID == id {
			return &c.resumes[i]
		}
	}
	return nil
}

// Filter returns the items whose filename or parsed name contains the query,
// case-insensitively. An empty query keeps everything.
func Filter(items []types.Resume, query string) []types.Resume {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	var kept []types.Resume
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Filename), q) ||
			(item.Name != "" && strings.Contains(strings.ToLower(item.Name), q)) {
			kept = append(kept, item)
		}
	}
	return kept
}

// Sort returns a sorted copy. The result depends only on the key and the
// item set, not the input order; ties break by id so the order is total.
// Unknown or empty keys preserve input order.
func Sort(items []types.Resume, key SortKey) []types.Resume {
	sorted := make([]types.Resume, len(items))
	copy(sorted, items)

	var less func(a, b types.Resume) bool
	switch key {
	case SortNewest:
		less = func(a, b types.Resume) bool { return a.UploadedTime().After(b.UploadedTime()) }
	case SortOldest:
		less = func(a, b types.Resume) bool { return a.UploadedTime().Before(b.UploadedTime()) }
	case SortName:
		less = func(a, b types.Resume) bool {
			return strings.ToLower(a.Filename) < strings.ToLower(b.Filename)
		}
	case SortSkills:
		less = func(a, b types.Resume) bool { return a.SkillsCount > b.SkillsCount }
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return a.ID < b.ID
	})
	return sorted
}
