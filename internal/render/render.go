// Package render provides formatted terminal output for the screens.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/interview-prep-agent/internal/format"
	"github.com/jonathan/interview-prep-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow caps list-valued sub-blocks; excess is truncated, not paginated
	maxItemsToShow = 5
)

// Printer handles formatted output for the screens.
type Printer struct {
	out io.Writer
	now func() time.Time
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, now: time.Now}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// capped returns up to maxItemsToShow items plus a truncation note.
func capped(items []string) []string {
	if len(items) <= maxItemsToShow {
		return items
	}
	return items[:maxItemsToShow]
}

// bulletBlock appends a capped bullet list under a heading. Excess items are
// truncated with a count note, never paginated.
func bulletBlock(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	for _, item := range capped(items) {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintResumes outputs the resume list with per-item metadata.
func (p *Printer) PrintResumes(resumes []types.Resume) {
	if len(resumes) == 0 {
		p.printBox("RESUMES", "No resumes yet.\nUpload one from the web app to get started.")
		return
	}

	var sb strings.Builder
	for i, r := range resumes {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", r.ID, r.Filename))
		if r.Name != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", r.Name))
		}
		sb.WriteString(fmt.Sprintf("    %d skills", r.SkillsCount))
		if uploaded := r.UploadedTime(); !uploaded.IsZero() {
			sb.WriteString(fmt.Sprintf(" · %s", format.RelativeTime(uploaded, p.now())))
		}
		sb.WriteString("\n")
		if i < len(resumes)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("RESUMES (%d)", len(resumes)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs the structured result of a resume analysis.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d/100\n", result.OverallScore))
	if result.Summary != "" {
		sb.WriteString(result.Summary + "\n")
	}

	if len(result.Strengths) > 0 {
		sb.WriteString("\n")
		bulletBlock(&sb, "Strengths", result.Strengths)
	}
	if len(result.Improvements) > 0 {
		sb.WriteString("\n")
		bulletBlock(&sb, "Improvements", result.Improvements)
	}

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCompanyProfile outputs the company profile section body. Sub-blocks
// with no backing data are omitted.
func (p *Printer) PrintCompanyProfile(profile *types.CompanyProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	if profile.Name != "" {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", profile.Name))
	}
	if profile.Industry != "" {
		sb.WriteString(fmt.Sprintf("Industry: %s\n", profile.Industry))
	}
	if profile.Overview != "" {
		sb.WriteString("\n" + profile.Overview + "\n")
	}
	if len(profile.Products) > 0 {
		sb.WriteString("\n")
		bulletBlock(&sb, "Products", profile.Products)
	}

	p.printBox("COMPANY PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValuesAndCulture outputs the values section body.
func (p *Printer) PrintValuesAndCulture(values *types.ValuesAndCulture) {
	if values == nil {
		return
	}

	var sb strings.Builder
	if len(values.CoreValues) > 0 {
		sb.WriteString("Core Values:\n")
		count := min(len(values.CoreValues), maxItemsToShow)
		for i := 0; i < count; i++ {
			v := values.CoreValues[i]
			sb.WriteString(fmt.Sprintf("  • %s", v.DisplayName()))
			if v.Description != "" {
				sb.WriteString(fmt.Sprintf(" — %s", v.Description))
			}
			sb.WriteString("\n")
		}
		if len(values.CoreValues) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(values.CoreValues)-maxItemsToShow))
		}
	}
	if values.CultureSummary != "" {
		sb.WriteString("\n" + values.CultureSummary + "\n")
	}

	p.printBox("VALUES & CULTURE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStrategyAndNews outputs the strategy & news section body.
func (p *Printer) PrintStrategyAndNews(strategy *types.StrategyAndNews) {
	if strategy == nil {
		return
	}

	var sb strings.Builder
	if strategy.MarketPosition != "" {
		sb.WriteString(strategy.MarketPosition + "\n")
	}
	if len(strategy.RecentNews) > 0 {
		sb.WriteString("\nRecent News:\n")
		count := min(len(strategy.RecentNews), maxItemsToShow)
		for i := 0; i < count; i++ {
			item := strategy.RecentNews[i]
			sb.WriteString(fmt.Sprintf("  • %s", item.Title))
			if item.Summary != "" {
				sb.WriteString(" — " + item.Summary)
			}
			sb.WriteString("\n")
		}
		if len(strategy.RecentNews) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(strategy.RecentNews)-maxItemsToShow))
		}
	}
	if len(strategy.StrategicPriorities) > 0 {
		sb.WriteString("\n")
		bulletBlock(&sb, "Strategic Priorities", strategy.StrategicPriorities)
	}

	p.printBox("STRATEGY & NEWS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoleAnalysis outputs the role analysis section body.
func (p *Printer) PrintRoleAnalysis(role *types.RoleAnalysis) {
	if role == nil {
		return
	}

	var sb strings.Builder
	bulletBlock(&sb, "Key Responsibilities", role.KeyResponsibilities)
	bulletBlock(&sb, "Required Skills", role.RequiredSkills)
	bulletBlock(&sb, "Nice to Have", role.NiceToHaveSkills)
	bulletBlock(&sb, "Success Factors", role.SuccessFactors)

	p.printBox("ROLE ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPreparation outputs the interview preparation section body.
func (p *Printer) PrintPreparation(preparation *types.InterviewPreparation) {
	if preparation == nil {
		return
	}

	var sb strings.Builder
	bulletBlock(&sb, "Tasks", preparation.Tasks)
	bulletBlock(&sb, "Key Topics", preparation.KeyTopics)
	bulletBlock(&sb, "Common Questions", preparation.CommonQuestions)

	p.printBox("INTERVIEW PREPARATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQuestionsToAsk outputs the questions-to-ask-the-interviewer section.
func (p *Printer) PrintQuestionsToAsk(questions []types.InterviewerQuestion) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(questions), maxItemsToShow)
	for i := 0; i < count; i++ {
		q := questions[i]
		sb.WriteString(fmt.Sprintf("  • %s\n", q.Question))
		if q.Rationale != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", q.Rationale))
		}
	}
	if len(questions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(questions)-maxItemsToShow))
	}

	p.printBox("QUESTIONS TO ASK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPositioning outputs the candidate positioning section body.
func (p *Printer) PrintPositioning(positioning *types.CandidatePositioning) {
	if positioning == nil {
		return
	}

	var sb strings.Builder
	if positioning.ElevatorPitch != "" {
		sb.WriteString(positioning.ElevatorPitch + "\n\n")
	}
	bulletBlock(&sb, "Strengths", positioning.Strengths)
	bulletBlock(&sb, "Gaps to Address", positioning.GapsToAddress)
	bulletBlock(&sb, "Talking Points", positioning.TalkingPoints)

	p.printBox("YOUR POSITIONING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStoryAnalysis outputs the structured feedback for a STAR story.
func (p *Printer) PrintStoryAnalysis(analysis *types.StoryAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d/100\n", analysis.Score))
	if analysis.Feedback != "" {
		sb.WriteString(analysis.Feedback + "\n")
	}
	if len(analysis.Strengths) > 0 {
		sb.WriteString("\n")
		bulletBlock(&sb, "Strengths", analysis.Strengths)
	}
	if len(analysis.Improvements) > 0 {
		sb.WriteString("\n")
		bulletBlock(&sb, "Improvements", analysis.Improvements)
	}

	p.printBox("STORY ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs improvement suggestions for a story.
func (p *Printer) PrintSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	bulletBlock(&sb, "Suggestions", suggestions)

	p.printBox("IMPROVEMENT SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStory outputs a STAR story.
func (p *Printer) PrintStory(story *types.STARStory) {
	if story == nil {
		return
	}

	var sb strings.Builder
	if story.Title != "" {
		sb.WriteString(story.Title + "\n\n")
	}
	sb.WriteString(fmt.Sprintf("Situation: %s\n", story.Situation))
	sb.WriteString(fmt.Sprintf("Task:      %s\n", story.Task))
	sb.WriteString(fmt.Sprintf("Action:    %s\n", story.Action))
	sb.WriteString(fmt.Sprintf("Result:    %s\n", story.Result))

	if len(story.TalkingPoints) > 0 {
		sb.WriteString("\n")
		bulletBlock(&sb, "Talking Points", story.TalkingPoints)
	}

	p.printBox("STAR STORY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQuestion outputs one practice question with its metadata.
func (p *Printer) PrintQuestion(q *types.PracticeQuestion) {
	if q == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(q.Question + "\n")
	if q.Category != "" || q.Difficulty != "" {
		sb.WriteString(fmt.Sprintf("[%s · %s]\n", q.Category, q.Difficulty))
	}
	if q.WhyAsked != "" {
		sb.WriteString("\nWhy they ask: " + q.WhyAsked + "\n")
	}
	if len(q.KeySkillsTested) > 0 {
		skills := strings.Join(q.KeySkillsTested, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills tested: %s\n", skills))
	}

	p.printBox("PRACTICE QUESTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHistory outputs the practice history with durations and recency.
func (p *Printer) PrintHistory(history []types.PracticeResponse) {
	if len(history) == 0 {
		p.printBox("PRACTICE HISTORY", "No practice sessions yet.")
		return
	}

	var sb strings.Builder
	for i, h := range history {
		question := h.QuestionText
		if len(question) > 50 {
			question = question[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", question))
		sb.WriteString(fmt.Sprintf("  practiced %dx · %s", h.TimesPracticed, format.Duration(h.DurationSeconds)))
		if h.LastPracticedAt != "" {
			if t, err := time.Parse(time.RFC3339, h.LastPracticedAt); err == nil {
				sb.WriteString(" · " + format.RelativeTime(t, p.now()))
			}
		}
		sb.WriteString("\n")
		if i < len(history)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PRACTICE HISTORY", strings.TrimSuffix(sb.String(), "\n"))
}
