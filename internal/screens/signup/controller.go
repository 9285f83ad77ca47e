// Package signup implements the sign-up form screen: synchronous client-side
// validation, submission to the auth collaborator, and a pending-verification
// state with a resend action.
package signup

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/interview-prep-agent/internal/api"
	"github.com/jonathan/interview-prep-agent/internal/prompt"
	"github.com/jonathan/interview-prep-agent/internal/types"
)

// ViewState is the screen's render state.
type ViewState int

const (
	StateForm ViewState = iota
	StatePendingVerification
)

// Gateway is the slice of the API client this screen consumes.
type Gateway interface {
	SignUp(ctx context.Context, req types.SignUpRequest) (*types.User, error)
	ResendVerification(ctx context.Context, email string) error
}

// Controller owns the sign-up screen state.
type Controller struct {
	gw     Gateway
	ui     prompt.UI
	logger *slog.Logger

	closed       bool
	state        ViewState
	form         types.SignUpRequest
	inlineError  string
	pendingEmail string
}

// New creates the controller showing an empty form.
func New(gw Gateway, ui prompt.UI, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{gw: gw, ui: ui, logger: logger, state: StateForm}
}

// State returns the current render state.
func (c *Controller) State() ViewState { return c.state }

// SetName updates the name field.
func (c *Controller) SetName(v string) { c.form.Name = v }

// SetEmail updates the email field.
func (c *Controller) SetEmail(v string) { c.form.Email = v }

// SetPassword updates the password field.
func (c *Controller) SetPassword(v string) { c.form.Password = v }

// SetConfirmPassword updates the confirmation field.
func (c *Controller) SetConfirmPassword(v string) { c.form.ConfirmPassword = v }

// InlineError returns the current validation message, or "".
func (c *Controller) InlineError() string { return c.inlineError }

// PendingEmail returns the address awaiting verification.
func (c *Controller) PendingEmail() string { return c.pendingEmail }

// Submit validates the form and, only if it passes, calls the auth
// collaborator. Validation failures set an inline error and perform no
// request. Collaborator failures are classified into a user-facing message.
func (c *Controller) Submit(ctx context.Context) bool {
	c.inlineError = validationMessage(&c.form)
	if c.inlineError != "" {
		return false
	}

	user, err := c.gw.SignUp(ctx, c.form)
	if c.closed {
		return false
	}
	if err != nil || user == nil {
		c.ui.Alert("Sign Up Failed", ClassifyError(err))
		return false
	}

	c.pendingEmail = c.form.Email
	c.state = StatePendingVerification
	return true
}

// ResendVerification re-sends the verification email. Safe to invoke
// repeatedly from the pending view.
func (c *Controller) ResendVerification(ctx context.Context) {
	if c.state != StatePendingVerification {
		return
	}

	err := c.gw.ResendVerification(ctx, c.pendingEmail)
	if c.closed {
		return
	}
	if err != nil {
		c.ui.Alert("Error", api.MessageOr(err, "Failed to resend the verification email. Please try again."))
		return
	}
	c.ui.Alert("Email Sent", "We sent a new verification link to "+c.pendingEmail+".")
}

// BackToForm returns to the form with all fields cleared.
func (c *Controller) BackToForm() {
	c.form = types.SignUpRequest{}
	c.inlineError = ""
	c.pendingEmail = ""
	c.state = StateForm
}

// Close marks the screen as unmounted.
func (c *Controller) Close() { c.closed = true }

// validationMessage runs the synchronous validation gate and maps the first
// failure to an inline message. Empty string means the form is valid.
func validationMessage(form *types.SignUpRequest) string {
	err := form.Validate()
	if err == nil {
		return ""
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Please fill in all fields."
	}

	first := fieldErrs[0]
	switch {
	case first.Tag() == "required":
		return "Please fill in all fields."
	case first.Field() == "Email":
		return "Please enter a valid email address."
	case first.Field() == "Password" && first.Tag() == "min":
		return "Password must be at least 8 characters."
	case first.Field() == "ConfirmPassword":
		return "Passwords do not match."
	default:
		return "Please fill in all fields."
	}
}

// ClassifyError maps an auth collaborator failure to a user-facing message
// by substring, falling back to the collaborator's own message and then to a
// generic one.
func ClassifyError(err error) string {
	if err == nil {
		return "Sign up failed. Please try again."
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "already registered"):
		return "This email is already registered. Try signing in instead."
	case strings.Contains(msg, "invalid"):
		return "Please enter a valid email address."
	}
	return api.MessageOr(err, "Sign up failed. Please try again.")
}
