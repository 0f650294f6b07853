package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	gh "github.com/google/go-github/v68/github"
	"github.com/jmcampanini/git-pr/internal/failure"
	"github.com/jmcampanini/git-pr/internal/github"
	"github.com/jmcampanini/git-pr/internal/pr"
)

var (
	purple = lipgloss.Color("99")
	green  = lipgloss.Color("42")
	red    = lipgloss.Color("196")
	gray   = lipgloss.Color("245")

	successStyle = lipgloss.NewStyle().Foreground(green).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(red).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(purple).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(gray)
)

// ReportError writes err to w prefixed with its kind, e.g. "repo error: failed to read repo config".
func ReportError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "%s %v\n", errorStyle.Render(failure.KindOf(err).String()+":"), err)
}

func printCreated(w io.Writer, created github.Created) error {
	_, err := fmt.Fprintf(w, "%s created pull request #%d: %s\n",
		successStyle.Render("✓"), created.Number, created.URL)
	return err
}

// printDryRun shows what would be posted, without sending it.
func printDryRun(w io.Writer, endpoint string, payload *gh.NewPullRequest) error {
	encoded, err := pr.EncodePayload(payload)
	if err != nil {
		return failure.Other(err, "cannot encode payload")
	}

	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return labelStyle.Padding(0, 1)
			case col == 0:
				return cellStyle.Foreground(gray)
			default:
				return cellStyle
			}
		}).
		Headers("Field", "Value").
		Row("title", payload.GetTitle()).
		Row("body", truncateString(payload.GetBody(), 60)).
		Row("head", payload.GetHead()).
		Row("base", payload.GetBase())

	_, err = fmt.Fprintf(w, "%s POST %s\n%s\n%s\n%s\n",
		labelStyle.Render("dry run:"), endpoint, t,
		dimStyle.Render(fmt.Sprintf("payload (%s):", humanize.Bytes(uint64(len(encoded))))),
		encoded)
	return err
}

// truncateString shortens s to at most maxLen runes, ending in "..." when cut.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
