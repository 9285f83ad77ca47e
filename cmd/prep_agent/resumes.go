package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-prep-agent/internal/screens/resumelist"
)

var resumesCmd = &cobra.Command{
	Use:   "resumes",
	Short: "List your uploaded resumes",
	Long:  "Fetches your resume collection and prints it with per-item metadata. Supports local filtering and sorting; neither touches the backend.",
	RunE:  runResumes,
}

var deleteResumeCmd = &cobra.Command{
	Use:   "delete-resume",
	Short: "Delete an uploaded resume",
	RunE:  runDeleteResume,
}

var analyzeResumeCmd = &cobra.Command{
	Use:   "analyze-resume",
	Short: "Run the AI analysis for a resume",
	RunE:  runAnalyzeResume,
}

var tailoredCmd = &cobra.Command{
	Use:   "tailored",
	Short: "List the tailored variants of a resume",
	RunE:  runTailored,
}

var (
	resumesFilter   string
	resumesSort     string
	deleteResumeID  int64
	analyzeResumeID int64
	tailoredOfID    int64
)

func init() {
	resumesCmd.Flags().StringVarP(&resumesFilter, "filter", "f", "", "Case-insensitive substring filter on filename or parsed name")
	resumesCmd.Flags().StringVarP(&resumesSort, "sort", "s", "", "Sort order: newest, oldest, name, or skills")

	deleteResumeCmd.Flags().Int64Var(&deleteResumeID, "id", 0, "Resume ID (required)")
	if err := deleteResumeCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	analyzeResumeCmd.Flags().Int64Var(&analyzeResumeID, "id", 0, "Resume ID (required)")
	if err := analyzeResumeCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	tailoredCmd.Flags().Int64Var(&tailoredOfID, "resume-id", 0, "Parent resume ID (required)")
	if err := tailoredCmd.MarkFlagRequired("resume-id"); err != nil {
		panic(fmt.Sprintf("failed to mark resume-id flag as required: %v", err))
	}

	rootCmd.AddCommand(resumesCmd)
	rootCmd.AddCommand(deleteResumeCmd)
	rootCmd.AddCommand(analyzeResumeCmd)
	rootCmd.AddCommand(tailoredCmd)
}

func runResumes(_ *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	screen := resumelist.New(app.client, app.ui, app.logger)
	defer screen.Close()
	screen.Load(ctx)
	screen.SetFilter(resumesFilter)
	screen.SetSort(resumelist.SortKey(resumesSort))

	app.printer.PrintResumes(screen.Visible())
	return nil
}

func runDeleteResume(_ *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	screen := resumelist.New(app.client, app.ui, app.logger)
	defer screen.Close()
	screen.Load(ctx)

	if screen.Delete(ctx, deleteResumeID) {
		_, _ = fmt.Fprintf(os.Stdout, "Deleted resume %d\n", deleteResumeID)
	}
	return nil
}

func runAnalyzeResume(_ *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	screen := resumelist.New(app.client, app.ui, app.logger)
	defer screen.Close()

	result := screen.Analyze(ctx, analyzeResumeID)
	if result != nil {
		app.printer.PrintAnalysis(result)
	}
	return nil
}

func runTailored(_ *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	tailored, err := app.client.ListTailoredResumes(ctx, tailoredOfID)
	if err != nil {
		return fmt.Errorf("failed to list tailored resumes: %w", err)
	}
	if len(tailored) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No tailored resumes yet. Tailor one from the web app to get started.")
		return nil
	}

	for _, t := range tailored {
		line := fmt.Sprintf("#%d  %s", t.ID, t.JobTitle)
		if t.Company != "" {
			line += " @ " + t.Company
		}
		if t.MatchScore > 0 {
			line += fmt.Sprintf(" (%d%% match)", t.MatchScore)
		}
		_, _ = fmt.Fprintln(os.Stdout, line)
	}
	return nil
}
