package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/interview-prep-agent/internal/types"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestPrintResumes(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.now = func() time.Time { return time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC) }

	p.PrintResumes([]types.Resume{
		{ID: 1, Filename: "A.pdf", Name: "Jane Doe", SkillsCount: 5, UploadedAt: "2025-06-01"},
		{ID: 2, Filename: "B.pdf", SkillsCount: 20, UploadedAt: "2025-01-01"},
	})
	output := buf.String()

	assert.Contains(t, output, "RESUMES (2)")
	assert.Contains(t, output, "A.pdf")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "20 skills")
	assert.Contains(t, output, "1d ago")
}

func TestPrintResumes_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResumes(nil)

	assert.Contains(t, buf.String(), "No resumes yet.")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysis(&types.AnalysisResult{
		OverallScore: 82,
		Summary:      "Strong backend profile",
		Strengths:    []string{"Go", "Kubernetes", "Postgres", "Kafka", "Redis", "Terraform"},
	})
	output := buf.String()

	assert.Contains(t, output, "82/100")
	assert.Contains(t, output, "Strong backend profile")
	assert.Contains(t, output, "Redis")
	assert.NotContains(t, output, "Terraform")
	assert.Contains(t, output, "... and 1 more")
}

func TestPrintValuesAndCulture_CapsAtFive(t *testing.T) {
	values := &types.ValuesAndCulture{}
	for _, name := range []string{"One", "Two", "Three", "Four", "Five", "Six", "Seven"} {
		values.CoreValues = append(values.CoreValues, types.CoreValue{Title: name})
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintValuesAndCulture(values)
	output := buf.String()

	assert.Contains(t, output, "Five")
	assert.NotContains(t, output, "Six")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintValuesAndCulture_UnknownValueFallback(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintValuesAndCulture(&types.ValuesAndCulture{
		CoreValues: []types.CoreValue{{Description: "unlabeled"}},
	})

	assert.Contains(t, buf.String(), "Unknown Value")
}

func TestPrintPreparation_CapsTasksAtFive(t *testing.T) {
	preparation := &types.InterviewPreparation{}
	for _, task := range []string{"One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight"} {
		preparation.Tasks = append(preparation.Tasks, task)
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintPreparation(preparation)
	output := buf.String()

	assert.Equal(t, 5, strings.Count(output, "•"))
	assert.Contains(t, output, "Five")
	assert.NotContains(t, output, "Six")
	assert.Contains(t, output, "... and 3 more")
}

func TestPrintQuestionsToAsk_CapsAtFive(t *testing.T) {
	var questions []types.InterviewerQuestion
	for _, q := range []string{"Q1", "Q2", "Q3", "Q4", "Q5", "Q6"} {
		questions = append(questions, types.InterviewerQuestion{Question: q, Rationale: "because"})
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintQuestionsToAsk(questions)
	output := buf.String()

	assert.Contains(t, output, "Q5")
	assert.NotContains(t, output, "Q6")
	assert.Contains(t, output, "... and 1 more")
}

func TestPrintStrategyAndNews_CapsNewsAtFive(t *testing.T) {
	strategy := &types.StrategyAndNews{MarketPosition: "Market leader"}
	for _, title := range []string{"N1", "N2", "N3", "N4", "N5", "N6", "N7"} {
		strategy.RecentNews = append(strategy.RecentNews, types.NewsItem{Title: title, Summary: "details"})
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintStrategyAndNews(strategy)
	output := buf.String()

	assert.Contains(t, output, "Market leader")
	assert.Contains(t, output, "N5")
	assert.NotContains(t, output, "N6")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintRoleAnalysis(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRoleAnalysis(&types.RoleAnalysis{
		KeyResponsibilities: []string{"Own the roadmap"},
		RequiredSkills:      []string{"Go", "SQL"},
	})
	output := buf.String()

	assert.Contains(t, output, "ROLE ANALYSIS")
	assert.Contains(t, output, "Own the roadmap")
	assert.Contains(t, output, "Required Skills:")
	assert.NotContains(t, output, "Success Factors")
}

func TestPrintStoryAnalysis(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintStoryAnalysis(&types.StoryAnalysis{
		Score:     74,
		Feedback:  "Solid structure",
		Strengths: []string{"Clear result"},
	})
	output := buf.String()

	assert.Contains(t, output, "74/100")
	assert.Contains(t, output, "Solid structure")
	assert.Contains(t, output, "Clear result")
}

func TestPrintStory(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintStory(&types.STARStory{
		Title:     "Outage recovery",
		Situation: "Production outage",
		Task:      "Restore service",
		Action:    "Rolled back",
		Result:    "Recovered in 40 minutes",
	})
	output := buf.String()

	assert.Contains(t, output, "STAR STORY")
	assert.Contains(t, output, "Outage recovery")
	assert.Contains(t, output, "Situation: Production outage")
	assert.Contains(t, output, "Result:    Recovered in 40 minutes")
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.now = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }

	p.PrintHistory([]types.PracticeResponse{
		{
			ID:              1,
			QuestionText:    "Tell me about a conflict",
			TimesPracticed:  3,
			DurationSeconds: intPtr(90),
			LastPracticedAt: "2025-06-15T11:30:00Z",
		},
		{ID: 2, QuestionText: "Describe a failure", TimesPracticed: 1},
	})
	output := buf.String()

	assert.Contains(t, output, "practiced 3x · 1m 30s")
	assert.Contains(t, output, "30m ago")
	assert.Contains(t, output, "practiced 1x · N/A")
}

func TestPrintHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintHistory(nil)

	assert.Contains(t, buf.String(), "No practice sessions yet.")
}
