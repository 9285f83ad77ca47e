package prep

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/jonathan/interview-prep-agent/internal/api"
	"github.com/jonathan/interview-prep-agent/internal/prepcache"
	"github.com/jonathan/interview-prep-agent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	prep        *types.InterviewPrep
	getErr      error
	generated   *types.InterviewPrep
	generateErr error
	deleteErr   error

	generateCalls int
	deleteCalls   int
}

func (f *fakeGateway) GetInterviewPrep(context.Context, int64) (*types.InterviewPrep, error) {
	return f.prep, f.getErr
}

func (f *fakeGateway) GenerateInterviewPrep(context.Context, int64) (*types.InterviewPrep, error) {
	f.generateCalls++
	return f.generated, f.generateErr
}

func (f *fakeGateway) DeleteInterviewPrep(context.Context, int64) error {
	f.deleteCalls++
	return f.deleteErr
}

type fakeUI struct {
	confirmAnswer bool
	alerts        []string
}

func (f *fakeUI) Confirm(_, _, _ string) bool { return f.confirmAnswer }
func (f *fakeUI) Alert(title, message string) {
	f.alerts = append(f.alerts, title+": "+message)
}

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func fullPrep() *types.InterviewPrep {
	return &types.InterviewPrep{
		ID:               3,
		TailoredResumeID: 9,
		CompanyProfile:   &types.CompanyProfile{Name: "Acme"},
		ValuesAndCulture: &types.ValuesAndCulture{
			CoreValues: []types.CoreValue{{Title: "Ownership"}, {Name: "Curiosity"}},
		},
		InterviewPreparation: &types.InterviewPreparation{
			Tasks: []string{"Research the team", "Prepare questions", "Review STAR stories"},
		},
		QuestionsToAskInterviewer: []types.InterviewerQuestion{{Question: "How is success measured?"}},
	}
}

func TestLoad_NoAggregateYet(t *testing.T) {
	c := New(&fakeGateway{}, &fakeUI{}, prepcache.New(), 9, testLogger)
	assert.Equal(t, StateUninitialized, c.State())

	c.Load(context.Background())
	assert.Equal(t, StateEmpty, c.State())
}

func TestLoad_FromBackendPopulatesCache(t *testing.T) {
	cache := prepcache.New()
	c := New(&fakeGateway{prep: fullPrep()}, &fakeUI{}, cache, 9, testLogger)

	c.Load(context.Background())
	assert.Equal(t, StateLoaded, c.State())

	cached, ok := cache.Get(9)
	require.True(t, ok)
	assert.EqualValues(t, 3, cached.ID)
}

func TestLoad_CacheHitSkipsBackend(t *testing.T) {
	cache := prepcache.New()
	cache.Put(9, fullPrep())

	gw := &fakeGateway{getErr: &api.Error{Op: "get interview prep", Message: "should not be called"}}
	ui := &fakeUI{}
	c := New(gw, ui, cache, 9, testLogger)

	c.Load(context.Background())
	assert.Equal(t, StateLoaded, c.State())
	assert.Empty(t, ui.alerts)
}

func TestGenerate_NullResultStaysEmptyWithFallbackAlert(t *testing.T) {
	ui := &fakeUI{}
	c := New(&fakeGateway{}, ui, prepcache.New(), 9, testLogger)
	c.Load(context.Background())
	require.Equal(t, StateEmpty, c.State())

	c.Generate(context.Background())

	assert.Equal(t, StateEmpty, c.State())
	require.Len(t, ui.alerts, 1)
	assert.Equal(t, "Generation Failed: Failed to generate interview prep. Please try again.", ui.alerts[0])
}

func TestGenerate_ServerMessagePreferred(t *testing.T) {
	ui := &fakeUI{}
	gw := &fakeGateway{generateErr: &api.Error{Op: "generate interview prep", Message: "tailored resume not found"}}
	c := New(gw, ui, prepcache.New(), 9, testLogger)
	c.Load(context.Background())

	c.Generate(context.Background())
	require.Len(t, ui.alerts, 1)
	assert.Contains(t, ui.alerts[0], "tailored resume not found")
}

func TestGenerate_Success(t *testing.T) {
	cache := prepcache.New()
	c := New(&fakeGateway{generated: fullPrep()}, &fakeUI{}, cache, 9, testLogger)
	c.Load(context.Background())

	c.Generate(context.Background())
	assert.Equal(t, StateLoaded, c.State())

	id, ok := c.PrepID()
	require.True(t, ok)
	assert.EqualValues(t, 3, id)

	_, ok = cache.Get(9)
	assert.True(t, ok)
}

func TestGenerate_OnlyFromEmpty(t *testing.T) {
	gw := &fakeGateway{prep: fullPrep(), generated: fullPrep()}
	c := New(gw, &fakeUI{}, prepcache.New(), 9, testLogger)
	c.Load(context.Background())
	require.Equal(t, StateLoaded, c.State())

	c.Generate(context.Background())
	assert.Zero(t, gw.generateCalls)
}

func TestRefresh_ConfirmedRegenerates(t *testing.T) {
	cache := prepcache.New()
	gw := &fakeGateway{prep: fullPrep(), generated: fullPrep()}
	c := New(gw, &fakeUI{confirmAnswer: true}, cache, 9, testLogger)
	c.Load(context.Background())

	c.Refresh(context.Background())

	assert.Equal(t, 1, gw.deleteCalls)
	assert.Equal(t, 1, gw.generateCalls)
	assert.Equal(t, StateLoaded, c.State())
}

func TestRefresh_ClearsTaskCompletionMarks(t *testing.T) {
	regenerated := fullPrep()
	regenerated.InterviewPreparation = &types.InterviewPreparation{Tasks: []string{"Research the team"}}

	gw := &fakeGateway{prep: fullPrep(), generated: regenerated}
	c := New(gw, &fakeUI{confirmAnswer: true}, prepcache.New(), 9, testLogger)
	c.Load(context.Background())

	c.ToggleTask(0)
	c.ToggleTask(2)
	require.Equal(t, "2/3 tasks completed", c.Subtitle(SectionPreparation))

	// The regenerated aggregate has fewer tasks; marks from the discarded
	// one must not carry over.
	c.Refresh(context.Background())
	require.Equal(t, StateLoaded, c.State())
	assert.Equal(t, "0/1 tasks completed", c.Subtitle(SectionPreparation))
}

func TestRefresh_Declined(t *testing.T) {
	gw := &fakeGateway{prep: fullPrep()}
	c := New(gw, &fakeUI{confirmAnswer: false}, prepcache.New(), 9, testLogger)
	c.Load(context.Background())

	c.Refresh(context.Background())
	assert.Zero(t, gw.deleteCalls)
	assert.Equal(t, StateLoaded, c.State())
}

func TestRefresh_DeleteFailureKeepsLoadedState(t *testing.T) {
	ui := &fakeUI{confirmAnswer: true}
	gw := &fakeGateway{prep: fullPrep(), deleteErr: &api.Error{Op: "delete interview prep"}}
	c := New(gw, ui, prepcache.New(), 9, testLogger)
	c.Load(context.Background())

	c.Refresh(context.Background())
	assert.Equal(t, StateLoaded, c.State())
	assert.NotEmpty(t, ui.alerts)
}

func TestToggle_SingleSelectAccordion(t *testing.T) {
	c := New(&fakeGateway{prep: fullPrep()}, &fakeUI{}, prepcache.New(), 9, testLogger)
	c.Load(context.Background())

	assert.Equal(t, Section(""), c.Expanded())

	c.Toggle(SectionCompanyProfile)
	assert.Equal(t, SectionCompanyProfile, c.Expanded())

	// Selecting another section collapses the first.
	c.Toggle(SectionValuesCulture)
	assert.Equal(t, SectionValuesCulture, c.Expanded())

	// Selecting the expanded section collapses it.
	c.Toggle(SectionValuesCulture)
	assert.Equal(t, Section(""), c.Expanded())

	// Collapsing when already collapsed is a no-op round trip.
	c.Toggle(SectionValuesCulture)
	c.Toggle(SectionValuesCulture)
	assert.Equal(t, Section(""), c.Expanded())
}

func TestVisibleSections_IndependentGating(t *testing.T) {
	prep := fullPrep()
	visible := VisibleSections(prep)
	assert.Equal(t, []Section{
		SectionCompanyProfile,
		SectionValuesCulture,
		SectionPreparation,
		SectionQuestionsToAsk,
	}, visible)

	prep.CompanyProfile = nil
	visible = VisibleSections(prep)
	assert.NotContains(t, visible, SectionCompanyProfile)
	assert.Contains(t, visible, SectionValuesCulture)

	assert.Nil(t, VisibleSections(nil))
	assert.Empty(t, VisibleSections(&types.InterviewPrep{ID: 1}))
}

func TestSubtitles(t *testing.T) {
	c := New(&fakeGateway{prep: fullPrep()}, &fakeUI{}, prepcache.New(), 9, testLogger)
	c.Load(context.Background())

	assert.Equal(t, "Acme", c.Subtitle(SectionCompanyProfile))
	assert.Equal(t, "2 core values identified", c.Subtitle(SectionValuesCulture))
	assert.Equal(t, "0 recent updates", c.Subtitle(SectionStrategyNews))
	assert.Equal(t, "0/3 tasks completed", c.Subtitle(SectionPreparation))
	assert.Equal(t, "1 questions to ask", c.Subtitle(SectionQuestionsToAsk))

	c.ToggleTask(0)
	c.ToggleTask(2)
	assert.Equal(t, "2/3 tasks completed", c.Subtitle(SectionPreparation))

	c.ToggleTask(0)
	assert.Equal(t, "1/3 tasks completed", c.Subtitle(SectionPreparation))

	// Out-of-range toggles are ignored.
	c.ToggleTask(99)
	assert.Equal(t, "1/3 tasks completed", c.Subtitle(SectionPreparation))
}

func TestPrepID_AvailableRegardlessOfAccordionState(t *testing.T) {
	c := New(&fakeGateway{prep: fullPrep()}, &fakeUI{}, prepcache.New(), 9, testLogger)

	_, ok := c.PrepID()
	assert.False(t, ok)

	c.Load(context.Background())
	id, ok := c.PrepID()
	require.True(t, ok)
	assert.EqualValues(t, 3, id)
	assert.Equal(t, Section(""), c.Expanded())
}

func TestClose_BlocksLateStateUpdates(t *testing.T) {
	c := New(&fakeGateway{prep: fullPrep()}, &fakeUI{}, prepcache.New(), 9, testLogger)
	c.Close()
	c.Load(context.Background())

	assert.Equal(t, StateLoading, c.State())
	assert.Nil(t, c.Prep())
}
