package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/interview-prep-agent/internal/types"
)

// SignUp creates a new account. The created user is unverified until the
// emailed link is followed.
func (c *Client) SignUp(ctx context.Context, req types.SignUpRequest) (*types.User, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/v1/auth/signup", "sign up", req)
	if err != nil {
		return nil, err
	}
	if isAbsent(data) {
		return nil, &Error{Op: "sign up"}
	}

	var resp types.SignUpResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode sign up response: %w", err)
	}
	if resp.User == nil {
		return nil, &Error{Op: "sign up"}
	}
	return resp.User, nil
}

// ResendVerification re-sends the verification email. Safe to call
// repeatedly.
func (c *Client) ResendVerification(ctx context.Context, email string) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/auth/resend-verification", "resend verification",
		map[string]string{"email": email})
	return err
}
