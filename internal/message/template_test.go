package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	want := "\n\n// Requesting a pull to master from feat/x\n" +
		"// Write a message for this pull request. The first line\n" +
		"// of text is the title and the rest is the description.\n" +
		"// All lines beginning with // will be ignored"

	assert.Equal(t, want, Render("master", "feat/x"))
}

func TestRender_BracesInBranchAreLiteral(t *testing.T) {
	got := Render("main", "fix-{current}")
	assert.Contains(t, got, "// Requesting a pull to main from fix-{current}\n")
}
