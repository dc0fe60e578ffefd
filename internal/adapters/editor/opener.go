package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// Opener launches a text editor on a structure map file
type Opener struct {
	lookPath func(string) (string, error)
	getenv   func(string) string
}

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{lookPath: exec.LookPath, getenv: os.Getenv}
}

// Command returns an exec.Cmd editing path. The TUI runs it through
// tea.ExecProcess so the editor gets the terminal.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	if path == "" {
		return nil, fmt.Errorf("the embedded structure map cannot be edited; start with --graph")
	}

	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// findEditor prefers REPORTMAP_EDITOR, then $EDITOR and $VISUAL, then the
// first common editor on PATH
func (o *Opener) findEditor() string {
	for _, env := range []string{"REPORTMAP_EDITOR", "EDITOR", "VISUAL"} {
		if v := o.getenv(env); v != "" {
			return v
		}
	}

	for _, editor := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := o.lookPath(editor); err == nil {
			return path
		}
	}
	return ""
}
