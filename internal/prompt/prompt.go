// Package prompt provides the user-facing confirmation and alert surface.
// Screen controllers depend on the interfaces so tests can script answers.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks the user to approve an action before it runs. Destructive
// flows (delete, refresh) must go through a Confirmer.
type Confirmer interface {
	// Confirm presents the message with an explicit action label and returns
	// whether the user approved.
	Confirm(title, message, actionLabel string) bool
}

// Alerter surfaces an error or informational message to the user.
type Alerter interface {
	Alert(title, message string)
}

// UI combines the interaction surfaces a screen needs.
type UI interface {
	Confirmer
	Alerter
}

// Terminal implements UI over a reader/writer pair.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a Terminal prompting on out and reading answers from in.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Confirm prints the prompt and reads a single line; only an explicit
// "y"/"yes" counts as approval.
func (t *Terminal) Confirm(title, message, actionLabel string) bool {
	fmt.Fprintf(t.out, "%s\n%s\n[%s/cancel] > ", title, message, actionLabel)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes" || answer == strings.ToLower(actionLabel)
}

// Alert prints the message with its title.
func (t *Terminal) Alert(title, message string) {
	fmt.Fprintf(t.out, "⚠ %s: %s\n", title, message)
}
