package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// System implements ports.Clipboard with the OS clipboard
type System struct{}

// NewSystem creates a clipboard backed by the operating system
func NewSystem() *System {
	return &System{}
}

// WriteAll copies text to the clipboard
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not available on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy: %w", err)
	}
	return nil
}
