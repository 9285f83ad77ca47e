package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-prep-agent/internal/screens/practice"
	"github.com/jonathan/interview-prep-agent/internal/types"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Generate a batch of practice questions for an interview prep",
	Long:  "Generates behavioral practice questions from the interview prep and prints them, marking the ones you have already saved a response for.",
	RunE:  runPractice,
}

var starCmd = &cobra.Command{
	Use:   "star",
	Short: "Generate a STAR story answering a practice question",
	RunE:  runStar,
}

var savePracticeCmd = &cobra.Command{
	Use:   "save-practice",
	Short: "Save your practice response for a question",
	RunE:  runSavePractice,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show your saved practice responses",
	RunE:  runHistory,
}

var (
	practicePrepID int64
	practiceCount  int

	starPrepID   int64
	starQuestion string

	savePrepID   int64
	saveQuestion string
	saveAnswer   string

	historyPrepID int64
)

func init() {
	practiceCmd.Flags().Int64Var(&practicePrepID, "prep-id", 0, "Interview prep ID (required)")
	practiceCmd.Flags().IntVarP(&practiceCount, "count", "n", 0, "Questions to generate (defaults to config question_count)")
	if err := practiceCmd.MarkFlagRequired("prep-id"); err != nil {
		panic(fmt.Sprintf("failed to mark prep-id flag as required: %v", err))
	}

	starCmd.Flags().Int64Var(&starPrepID, "prep-id", 0, "Interview prep ID (required)")
	starCmd.Flags().StringVarP(&starQuestion, "question", "q", "", "Exact question text (required)")
	if err := starCmd.MarkFlagRequired("prep-id"); err != nil {
		panic(fmt.Sprintf("failed to mark prep-id flag as required: %v", err))
	}
	if err := starCmd.MarkFlagRequired("question"); err != nil {
		panic(fmt.Sprintf("failed to mark question flag as required: %v", err))
	}

	savePracticeCmd.Flags().Int64Var(&savePrepID, "prep-id", 0, "Interview prep ID (required)")
	savePracticeCmd.Flags().StringVarP(&saveQuestion, "question", "q", "", "Exact question text (required)")
	savePracticeCmd.Flags().StringVarP(&saveAnswer, "answer", "a", "", "Your written answer")
	if err := savePracticeCmd.MarkFlagRequired("prep-id"); err != nil {
		panic(fmt.Sprintf("failed to mark prep-id flag as required: %v", err))
	}
	if err := savePracticeCmd.MarkFlagRequired("question"); err != nil {
		panic(fmt.Sprintf("failed to mark question flag as required: %v", err))
	}

	historyCmd.Flags().Int64Var(&historyPrepID, "prep-id", 0, "Interview prep ID (required)")
	if err := historyCmd.MarkFlagRequired("prep-id"); err != nil {
		panic(fmt.Sprintf("failed to mark prep-id flag as required: %v", err))
	}

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(starCmd)
	rootCmd.AddCommand(savePracticeCmd)
	rootCmd.AddCommand(historyCmd)
}

func runPractice(_ *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	count := practiceCount
	if count <= 0 {
		count = app.cfg.QuestionCount
	}

	screen := practice.New(app.client, app.ui, practicePrepID, count, app.logger)
	defer screen.Close()
	screen.Load(ctx)
	if screen.State() != practice.StateLoaded {
		return nil
	}

	for i, q := range screen.Questions() {
		marker := " "
		if screen.IsSaved(q.Question) {
			marker = "✓"
		}
		_, _ = fmt.Fprintf(os.Stdout, "%s %d. %s", marker, i+1, q.Question)
		if q.Category != "" {
			_, _ = fmt.Fprintf(os.Stdout, "  [%s]", q.Category)
		}
		_, _ = fmt.Fprintln(os.Stdout)
	}
	return nil
}

func runStar(_ *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	story, err := app.client.GenerateSTARStory(ctx, starPrepID, starQuestion)
	if err != nil {
		return fmt.Errorf("failed to generate STAR story: %w", err)
	}

	app.printer.PrintStory(story)
	return nil
}

func runSavePractice(_ *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if strings.TrimSpace(saveAnswer) == "" {
		return fmt.Errorf("nothing to save: provide --answer")
	}

	_, err = app.client.SavePracticeResponse(ctx, types.SavePracticeRequest{
		InterviewPrepID: savePrepID,
		QuestionText:    saveQuestion,
		WrittenAnswer:   saveAnswer,
	})
	if err != nil {
		return fmt.Errorf("failed to save practice response: %w", err)
	}

	_, _ = fmt.Fprintln(os.Stdout, "Response saved")
	return nil
}

func runHistory(_ *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	history, err := app.client.ListPracticeResponses(ctx, historyPrepID)
	if err != nil {
		return fmt.Errorf("failed to list practice responses: %w", err)
	}

	app.printer.PrintHistory(history)
	return nil
}
