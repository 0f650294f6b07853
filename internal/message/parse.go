package message

import (
	"strings"

	"github.com/jmcampanini/git-pr/internal/failure"
)

// Sentinel starts the instructional footer. It and every line after it are dropped.
const Sentinel = "// Requesting a pull to"

// Message is the title and description of a pull request.
type Message struct {
	Title string
	Body  string
}

// Parse splits edited text into a Message. The first line is the title,
// verbatim. Later lines up to the sentinel are concatenated without a
// separator, so blank lines contribute nothing to the body.
func Parse(text string) (Message, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return Message{}, failure.Repo("Unable to read title")
	}

	title := lines[0]
	if strings.TrimSpace(title) == "" {
		return Message{}, failure.Repo("pull request title is empty")
	}

	var body strings.Builder
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, Sentinel) {
			break
		}
		body.WriteString(line)
	}

	return Message{Title: title, Body: body.String()}, nil
}

// splitLines breaks text on "\n", strips a trailing "\r" from each line and
// does not yield an empty final line for text ending in a newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
