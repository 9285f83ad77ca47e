package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminal_Confirm_Yes(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("y\n"), &out)

	ok := term.Confirm("Delete Resume", "Delete A.pdf? This cannot be undone.", "Delete")

	assert.True(t, ok)
	assert.Contains(t, out.String(), "Delete Resume")
	assert.Contains(t, out.String(), "[Delete/cancel]")
}

func TestTerminal_Confirm_ActionLabel(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("delete\n"), &out)

	assert.True(t, term.Confirm("Delete Resume", "Sure?", "Delete"))
}

func TestTerminal_Confirm_Declined(t *testing.T) {
	var out bytes.Buffer

	assert.False(t, NewTerminal(strings.NewReader("n\n"), &out).Confirm("Delete", "Sure?", "Delete"))
	assert.False(t, NewTerminal(strings.NewReader("\n"), &out).Confirm("Delete", "Sure?", "Delete"))
	assert.False(t, NewTerminal(strings.NewReader(""), &out).Confirm("Delete", "Sure?", "Delete"))
}

func TestTerminal_Alert(t *testing.T) {
	var out bytes.Buffer
	NewTerminal(strings.NewReader(""), &out).Alert("Generation Failed", "Failed to generate interview prep. Please try again.")

	assert.Contains(t, out.String(), "Generation Failed")
	assert.Contains(t, out.String(), "Please try again.")
}
