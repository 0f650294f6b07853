package message

import "github.com/valyala/fasttemplate"

const scratchTemplate = `

{sentinel} {target} from {current}
// Write a message for this pull request. The first line
// of text is the title and the rest is the description.
// All lines beginning with // will be ignored`

// Render returns the initial scratch file contents for a pull from current into target.
func Render(target, current string) string {
	return fasttemplate.ExecuteString(scratchTemplate, "{", "}", map[string]any{
		"sentinel": Sentinel,
		"target":   target,
		"current":  current,
	})
}
