package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-prep-agent/internal/screens/signup"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new account",
	Long:  "Creates an account and sends a verification email. The account is unusable until the emailed link is opened.",
	RunE:  runSignup,
}

var resendVerificationCmd = &cobra.Command{
	Use:   "resend-verification",
	Short: "Re-send the account verification email",
	RunE:  runResendVerification,
}

var (
	signupName            string
	signupEmail           string
	signupPassword        string
	signupConfirmPassword string

	resendEmail string
)

func init() {
	signupCmd.Flags().StringVar(&signupName, "name", "", "Your full name (required)")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "Your email address (required)")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "Password, at least 8 characters (required)")
	signupCmd.Flags().StringVar(&signupConfirmPassword, "confirm-password", "", "Password confirmation (required)")

	resendVerificationCmd.Flags().StringVar(&resendEmail, "email", "", "The email address awaiting verification (required)")
	if err := resendVerificationCmd.MarkFlagRequired("email"); err != nil {
		panic(fmt.Sprintf("failed to mark email flag as required: %v", err))
	}

	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(resendVerificationCmd)
}

func runSignup(_ *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	screen := signup.New(app.client, app.ui, app.logger)
	defer screen.Close()
	screen.SetName(signupName)
	screen.SetEmail(signupEmail)
	screen.SetPassword(signupPassword)
	screen.SetConfirmPassword(signupConfirmPassword)

	if !screen.Submit(ctx) {
		if msg := screen.InlineError(); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "Account created. Check %s for a verification link before signing in.\n", screen.PendingEmail())
	return nil
}

func runResendVerification(_ *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if err := app.client.ResendVerification(ctx, resendEmail); err != nil {
		return fmt.Errorf("failed to resend verification email: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "We sent a new verification link to %s.\n", resendEmail)
	return nil
}
