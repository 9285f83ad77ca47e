package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-prep-agent/internal/screens/storylist"
	"github.com/jonathan/interview-prep-agent/internal/types"
)

var storiesCmd = &cobra.Command{
	Use:   "stories",
	Short: "List your saved STAR stories",
	RunE:  runStories,
}

var createStoryCmd = &cobra.Command{
	Use:   "create-story",
	Short: "Save a new STAR story",
	Long:  "Saves a behavioral story in Situation/Task/Action/Result form. All four STAR fields are required; title and theme are optional.",
	RunE:  runCreateStory,
}

var deleteStoryCmd = &cobra.Command{
	Use:   "delete-story",
	Short: "Delete a saved STAR story",
	RunE:  runDeleteStory,
}

var analyzeStoryCmd = &cobra.Command{
	Use:   "analyze-story",
	Short: "Get structured AI feedback on a story",
	RunE:  runAnalyzeStory,
}

var improveStoryCmd = &cobra.Command{
	Use:   "improve-story",
	Short: "Get improvement suggestions for a story",
	RunE:  runImproveStory,
}

var storyVariationsCmd = &cobra.Command{
	Use:   "story-variations",
	Short: "Generate alternate tellings of a story",
	RunE:  runStoryVariations,
}

var (
	createTitle     string
	createSituation string
	createTask      string
	createAction    string
	createResult    string
	createTheme     string

	deleteStoryID     int64
	analyzeStoryID    int64
	improveStoryID    int64
	storyVariationsID int64
)

func init() {
	createStoryCmd.Flags().StringVar(&createTitle, "title", "", "Story title")
	createStoryCmd.Flags().StringVar(&createSituation, "situation", "", "The situation you faced (required)")
	createStoryCmd.Flags().StringVar(&createTask, "task", "", "The task you owned (required)")
	createStoryCmd.Flags().StringVar(&createAction, "action", "", "The action you took (required)")
	createStoryCmd.Flags().StringVar(&createResult, "result", "", "The result you achieved (required)")
	createStoryCmd.Flags().StringVar(&createTheme, "theme", "", "Behavioral theme, e.g. leadership or conflict")

	deleteStoryCmd.Flags().Int64Var(&deleteStoryID, "id", 0, "Story ID (required)")
	if err := deleteStoryCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	analyzeStoryCmd.Flags().Int64Var(&analyzeStoryID, "id", 0, "Story ID (required)")
	if err := analyzeStoryCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	improveStoryCmd.Flags().Int64Var(&improveStoryID, "id", 0, "Story ID (required)")
	if err := improveStoryCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	storyVariationsCmd.Flags().Int64Var(&storyVariationsID, "id", 0, "Story ID (required)")
	if err := storyVariationsCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	rootCmd.AddCommand(storiesCmd)
	rootCmd.AddCommand(createStoryCmd)
	rootCmd.AddCommand(deleteStoryCmd)
	rootCmd.AddCommand(analyzeStoryCmd)
	rootCmd.AddCommand(improveStoryCmd)
	rootCmd.AddCommand(storyVariationsCmd)
}

func runStories(_ *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	screen := storylist.New(app.client, app.ui, app.logger)
	defer screen.Close()
	screen.Load(ctx)

	stories := screen.Stories()
	if len(stories) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No stories yet. Save one with 'prep_agent create-story'.")
		return nil
	}

	for _, s := range stories {
		title := s.Title
		if title == "" {
			title = s.Situation
			if len(title) > 60 {
				title = title[:57] + "..."
			}
		}
		line := fmt.Sprintf("#%d  %s", s.ID, title)
		if s.Theme != "" {
			line += fmt.Sprintf("  [%s]", s.Theme)
		}
		_, _ = fmt.Fprintln(os.Stdout, line)
	}
	return nil
}

func runCreateStory(_ *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	screen := storylist.New(app.client, app.ui, app.logger)
	defer screen.Close()

	story := screen.Create(ctx, types.CreateStoryRequest{
		Title:     createTitle,
		Situation: createSituation,
		Task:      createTask,
		Action:    createAction,
		Result:    createResult,
		Theme:     createTheme,
	})
	if story != nil {
		_, _ = fmt.Fprintf(os.Stdout, "Saved story %d\n", story.ID)
	}
	return nil
}

func runDeleteStory(_ *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	screen := storylist.New(app.client, app.ui, app.logger)
	defer screen.Close()
	screen.Load(ctx)

	if screen.Delete(ctx, deleteStoryID) {
		_, _ = fmt.Fprintf(os.Stdout, "Deleted story %d\n", deleteStoryID)
	}
	return nil
}

func runAnalyzeStory(_ *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	screen := storylist.New(app.client, app.ui, app.logger)
	defer screen.Close()

	if analysis := screen.Analyze(ctx, analyzeStoryID); analysis != nil {
		app.printer.PrintStoryAnalysis(analysis)
	}
	return nil
}

func runImproveStory(_ *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	screen := storylist.New(app.client, app.ui, app.logger)
	defer screen.Close()

	app.printer.PrintSuggestions(screen.Improvements(ctx, improveStoryID))
	return nil
}

func runStoryVariations(_ *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	screen := storylist.New(app.client, app.ui, app.logger)
	defer screen.Close()

	for _, variation := range screen.Variations(ctx, storyVariationsID) {
		if variation.Style != "" {
			_, _ = fmt.Fprintf(os.Stdout, "── %s ──\n", variation.Style)
		}
		app.printer.PrintStory(&variation.Story)
	}
	return nil
}
