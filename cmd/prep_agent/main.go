// Package main provides the entry point for the interview prep CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prep_agent",
	Short: "Interview Prep CLI",
	Long:  "Interview Prep browses your resumes and tailored variants, generates AI interview preparation content, and runs practice sessions against the prep backend.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
