package message

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/jmcampanini/git-pr/internal/failure"
)

// DefaultEditor is used when neither config nor environment names an editor.
const DefaultEditor = "vi"

// Runner opens path in editor and returns once the editor process exits.
type Runner interface {
	Run(editor, path string) error
}

// ShellRunner runs the editor through sh so that editor strings with
// arguments ("code --wait") work the way git runs them.
type ShellRunner struct {
	log *clog.Logger
}

var _ Runner = &ShellRunner{}

// NewShellRunner creates a Runner attached to the current terminal.
func NewShellRunner() *ShellRunner {
	return &ShellRunner{log: clog.Default().WithPrefix("editor")}
}

// Run blocks until the editor exits. There is no timeout; an interrupt from the
// terminal reaches the editor through the shared process group.
func (r *ShellRunner) Run(editor, path string) error {
	r.log.Debug("Launching editor", "editor", editor, "path", path)

	cmd := exec.Command("sh", "-c", editor+` "$@"`, editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	started := time.Now()
	if err := cmd.Run(); err != nil {
		r.log.Warn("Editor failed", "editor", editor, "error", err)
		return fmt.Errorf("editor %q failed: %w", editor, err)
	}

	r.log.Debug("Editor exited", "editor", editor, "opened", humanize.Time(started))
	return nil
}

// ResolveEditor picks the editor command: the configured one, then $GIT_EDITOR,
// $VISUAL and $EDITOR, then DefaultEditor.
func ResolveEditor(configured string, getenv func(string) string) string {
	if configured != "" {
		return configured
	}
	for _, key := range []string{"GIT_EDITOR", "VISUAL", "EDITOR"} {
		if v := getenv(key); v != "" {
			return v
		}
	}
	return DefaultEditor
}

// Editor owns the scratch file at a fixed path. The file is never removed so
// it can be inspected after a failed submission.
type Editor struct {
	command string
	log     *clog.Logger
	path    string
	runner  Runner
}

// New creates an Editor for the scratch file at path.
func New(path, command string, runner Runner) *Editor {
	return &Editor{
		command: command,
		log:     clog.Default().WithPrefix("editor"),
		path:    path,
		runner:  runner,
	}
}

// Path returns the scratch file location.
func (e *Editor) Path() string {
	return e.path
}

// Template writes the scratch file for a pull from current into target,
// replacing any previous contents.
func (e *Editor) Template(target, current string) error {
	contents := Render(target, current)
	if err := os.WriteFile(e.path, []byte(contents), 0644); err != nil {
		return failure.IO(err, "cannot write pull request message file")
	}
	e.log.Debug("Wrote message template", "path", e.path, "size", humanize.Bytes(uint64(len(contents))))
	return nil
}

// EditAndParse opens the scratch file in the editor, waits for it to exit and
// parses the result.
func (e *Editor) EditAndParse() (Message, error) {
	if err := e.runner.Run(e.command, e.path); err != nil {
		return Message{}, failure.Other(err, "cannot edit pull request message")
	}

	data, err := os.ReadFile(e.path)
	if err != nil {
		return Message{}, failure.IO(err, "cannot read pull request message file")
	}

	msg, err := Parse(string(data))
	if err != nil {
		return Message{}, err
	}
	e.log.Debug("Parsed pull request message", "title", msg.Title, "bodyLen", len(msg.Body))
	return msg, nil
}
