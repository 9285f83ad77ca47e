package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-prep-agent/internal/prepcache"
	"github.com/jonathan/interview-prep-agent/internal/screens/prep"
	"github.com/jonathan/interview-prep-agent/internal/types"
)

var prepCmd = &cobra.Command{
	Use:   "prep",
	Short: "Show the interview prep for a tailored resume",
	Long:  "Loads the AI-generated interview preparation aggregate for a tailored resume and prints its sections. Use --section to expand one section's full content.",
	RunE:  runPrep,
}

var generatePrepCmd = &cobra.Command{
	Use:   "generate-prep",
	Short: "Generate interview prep for a tailored resume",
	RunE:  runGeneratePrep,
}

var refreshPrepCmd = &cobra.Command{
	Use:   "refresh-prep",
	Short: "Regenerate all interview prep content from scratch",
	RunE:  runRefreshPrep,
}

var (
	prepTailoredID    int64
	prepSection       string
	genPrepTailoredID int64
	refreshTailoredID int64
)

func init() {
	prepCmd.Flags().Int64Var(&prepTailoredID, "tailored-resume-id", 0, "Tailored resume ID (required)")
	prepCmd.Flags().StringVar(&prepSection, "section", "", "Section to expand: company_profile, values_and_culture, strategy_and_news, role_analysis, interview_preparation, questions_to_ask, candidate_positioning")
	if err := prepCmd.MarkFlagRequired("tailored-resume-id"); err != nil {
		panic(fmt.Sprintf("failed to mark tailored-resume-id flag as required: %v", err))
	}

	generatePrepCmd.Flags().Int64Var(&genPrepTailoredID, "tailored-resume-id", 0, "Tailored resume ID (required)")
	if err := generatePrepCmd.MarkFlagRequired("tailored-resume-id"); err != nil {
		panic(fmt.Sprintf("failed to mark tailored-resume-id flag as required: %v", err))
	}

	refreshPrepCmd.Flags().Int64Var(&refreshTailoredID, "tailored-resume-id", 0, "Tailored resume ID (required)")
	if err := refreshPrepCmd.MarkFlagRequired("tailored-resume-id"); err != nil {
		panic(fmt.Sprintf("failed to mark tailored-resume-id flag as required: %v", err))
	}

	rootCmd.AddCommand(prepCmd)
	rootCmd.AddCommand(generatePrepCmd)
	rootCmd.AddCommand(refreshPrepCmd)
}

func runPrep(_ *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	screen := prep.New(app.client, app.ui, prepcache.New(), prepTailoredID, app.logger)
	defer screen.Close()
	screen.Load(ctx)

	switch screen.State() {
	case prep.StateEmpty:
		_, _ = fmt.Fprintln(os.Stdout, "No interview prep yet. Run 'prep_agent generate-prep' to create it.")
		return nil
	case prep.StateLoaded:
		// fall through to rendering
	default:
		return nil
	}

	if prepSection != "" {
		screen.Toggle(prep.Section(prepSection))
	}

	for _, section := range prep.VisibleSections(screen.Prep()) {
		if section == screen.Expanded() {
			printSection(app, screen.Prep(), section)
			continue
		}
		_, _ = fmt.Fprintf(os.Stdout, "▸ %-22s %s\n", sectionLabel(section), screen.Subtitle(section))
	}
	return nil
}

func runGeneratePrep(_ *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	screen := prep.New(app.client, app.ui, prepcache.New(), genPrepTailoredID, app.logger)
	defer screen.Close()
	screen.Load(ctx)

	if screen.State() == prep.StateLoaded {
		_, _ = fmt.Fprintln(os.Stdout, "Interview prep already exists. Run 'prep_agent refresh-prep' to regenerate it.")
		return nil
	}

	screen.Generate(ctx)
	if screen.State() != prep.StateLoaded {
		return nil
	}

	id, _ := screen.PrepID()
	_, _ = fmt.Fprintf(os.Stdout, "Generated interview prep %d with %d sections\n", id, len(prep.VisibleSections(screen.Prep())))
	return nil
}

func runRefreshPrep(_ *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	screen := prep.New(app.client, app.ui, prepcache.New(), refreshTailoredID, app.logger)
	defer screen.Close()
	screen.Load(ctx)

	if screen.State() != prep.StateLoaded {
		_, _ = fmt.Fprintln(os.Stdout, "Nothing to refresh. Run 'prep_agent generate-prep' first.")
		return nil
	}

	screen.Refresh(ctx)
	if screen.State() == prep.StateLoaded {
		_, _ = fmt.Fprintln(os.Stdout, "Interview prep regenerated")
	}
	return nil
}

func sectionLabel(section prep.Section) string {
	switch section {
	case prep.SectionCompanyProfile:
		return "Company Profile"
	case prep.SectionValuesCulture:
		return "Values & Culture"
	case prep.SectionStrategyNews:
		return "Strategy & News"
	case prep.SectionRoleAnalysis:
		return "Role Analysis"
	case prep.SectionPreparation:
		return "Interview Preparation"
	case prep.SectionQuestionsToAsk:
		return "Questions to Ask"
	case prep.SectionPositioning:
		return "Your Positioning"
	}
	return string(section)
}

// printSection renders one expanded section's full content.
func printSection(app *app, aggregate *types.InterviewPrep, section prep.Section) {
	switch section {
	case prep.SectionCompanyProfile:
		app.printer.PrintCompanyProfile(aggregate.CompanyProfile)
	case prep.SectionValuesCulture:
		app.printer.PrintValuesAndCulture(aggregate.ValuesAndCulture)
	case prep.SectionStrategyNews:
		app.printer.PrintStrategyAndNews(aggregate.StrategyAndNews)
	case prep.SectionRoleAnalysis:
		app.printer.PrintRoleAnalysis(aggregate.RoleAnalysis)
	case prep.SectionPreparation:
		app.printer.PrintPreparation(aggregate.InterviewPreparation)
	case prep.SectionQuestionsToAsk:
		app.printer.PrintQuestionsToAsk(aggregate.QuestionsToAskInterviewer)
	case prep.SectionPositioning:
		app.printer.PrintPositioning(aggregate.CandidatePositioning)
	}
}
