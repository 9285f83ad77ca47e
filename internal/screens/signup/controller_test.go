package signup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/jonathan/interview-prep-agent/internal/api"
	"github.com/jonathan/interview-prep-agent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	user        *types.User
	signUpErr   error
	resendErr   error
	signUpCalls int
	resendCalls int
}

func (f *fakeGateway) SignUp(context.Context, types.SignUpRequest) (*types.User, error) {
	f.signUpCalls++
	return f.user, f.signUpErr
}

func (f *fakeGateway) ResendVerification(context.Context, string) error {
	f.resendCalls++
	return f.resendErr
}

type fakeUI struct {
	alerts []string
}

func (f *fakeUI) Confirm(_, _, _ string) bool { return true }
func (f *fakeUI) Alert(title, message string) {
	f.alerts = append(f.alerts, title+": "+message)
}

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func fillValidForm(c *Controller) {
	c.SetName("Jane Doe")
	c.SetEmail("jane@example.com")
	c.SetPassword("supersecret")
	c.SetConfirmPassword("supersecret")
}

func TestSubmit_EmptyFieldsBlockRequest(t *testing.T) {
	gw := &fakeGateway{}
	c := New(gw, &fakeUI{}, testLogger)

	assert.False(t, c.Submit(context.Background()))
	assert.Equal(t, "Please fill in all fields.", c.InlineError())
	assert.Zero(t, gw.signUpCalls)
}

func TestSubmit_ShortPassword(t *testing.T) {
	gw := &fakeGateway{}
	c := New(gw, &fakeUI{}, testLogger)
	fillValidForm(c)
	c.SetPassword("short")
	c.SetConfirmPassword("short")

	assert.False(t, c.Submit(context.Background()))
	assert.Equal(t, "Password must be at least 8 characters.", c.InlineError())
	assert.Zero(t, gw.signUpCalls)
}

func TestSubmit_PasswordMismatch(t *testing.T) {
	c := New(&fakeGateway{}, &fakeUI{}, testLogger)
	fillValidForm(c)
	c.SetConfirmPassword("different123")

	assert.False(t, c.Submit(context.Background()))
	assert.Equal(t, "Passwords do not match.", c.InlineError())
}

func TestSubmit_BadEmail(t *testing.T) {
	c := New(&fakeGateway{}, &fakeUI{}, testLogger)
	fillValidForm(c)
	c.SetEmail("not-an-email")

	assert.False(t, c.Submit(context.Background()))
	assert.Equal(t, "Please enter a valid email address.", c.InlineError())
}

func TestSubmit_SuccessTransitionsToPendingVerification(t *testing.T) {
	gw := &fakeGateway{user: &types.User{ID: 1, Email: "jane@example.com"}}
	c := New(gw, &fakeUI{}, testLogger)
	fillValidForm(c)

	require.True(t, c.Submit(context.Background()))
	assert.Equal(t, StatePendingVerification, c.State())
	assert.Equal(t, "jane@example.com", c.PendingEmail())
	assert.Empty(t, c.InlineError())
}

func TestSubmit_CollaboratorFailureAlertsClassifiedMessage(t *testing.T) {
	ui := &fakeUI{}
	gw := &fakeGateway{signUpErr: &api.Error{Op: "sign up", Message: "email already registered"}}
	c := New(gw, ui, testLogger)
	fillValidForm(c)

	assert.False(t, c.Submit(context.Background()))
	assert.Equal(t, StateForm, c.State())
	require.Len(t, ui.alerts, 1)
	assert.Contains(t, ui.alerts[0], "already registered. Try signing in")
}

func TestClassifyError(t *testing.T) {
	assert.Equal(t, "This email is already registered. Try signing in instead.",
		ClassifyError(errors.New("sign up failed: Email Already Registered")))
	assert.Equal(t, "Please enter a valid email address.",
		ClassifyError(errors.New("invalid email format")))
	assert.Equal(t, "backend exploded",
		ClassifyError(&api.Error{Op: "sign up", Message: "backend exploded"}))
	assert.Equal(t, "Sign up failed. Please try again.",
		ClassifyError(errors.New("dial tcp: connection refused")))
	assert.Equal(t, "Sign up failed. Please try again.", ClassifyError(nil))
}

func TestResendVerification_Idempotent(t *testing.T) {
	gw := &fakeGateway{user: &types.User{ID: 1}}
	ui := &fakeUI{}
	c := New(gw, ui, testLogger)
	fillValidForm(c)
	require.True(t, c.Submit(context.Background()))

	c.ResendVerification(context.Background())
	c.ResendVerification(context.Background())

	assert.Equal(t, 2, gw.resendCalls)
	assert.Len(t, ui.alerts, 2)
	assert.Contains(t, ui.alerts[0], "Email Sent")
}

func TestResendVerification_OnlyFromPendingState(t *testing.T) {
	gw := &fakeGateway{}
	c := New(gw, &fakeUI{}, testLogger)

	c.ResendVerification(context.Background())
	assert.Zero(t, gw.resendCalls)
}

func TestBackToForm_ClearsAllFields(t *testing.T) {
	gw := &fakeGateway{user: &types.User{ID: 1}}
	c := New(gw, &fakeUI{}, testLogger)
	fillValidForm(c)
	require.True(t, c.Submit(context.Background()))

	c.BackToForm()
	assert.Equal(t, StateForm, c.State())
	assert.Empty(t, c.PendingEmail())

	// Submitting again immediately must fail validation: the fields are gone.
	assert.False(t, c.Submit(context.Background()))
	assert.Equal(t, "Please fill in all fields.", c.InlineError())
}
