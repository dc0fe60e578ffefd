package opener

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Opener implements ports.DocumentOpener by resolving node hrefs against
// the address of the accounting application
type Opener struct {
	base *url.URL
	run  func(uri string) error
}

// NewOpener creates an opener for the application served at baseURL
func NewOpener(baseURL string) (*Opener, error) {
	base, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", baseURL)
	}
	return &Opener{base: base, run: openURI}, nil
}

// Open opens the document behind href in the default browser
func (o *Opener) Open(href string) error {
	uri, err := o.URI(href)
	if err != nil {
		return err
	}
	return o.run(uri)
}

// URI resolves href against the base URL. Absolute hrefs are returned
// unchanged.
func (o *Opener) URI(href string) (string, error) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", fmt.Errorf("document has no link")
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("invalid link %q: %w", href, err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}

	return o.base.ResolveReference(ref).String(), nil
}

func openURI(uri string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "linux":
		cmd = exec.Command("xdg-open", uri)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", uri)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return cmd.Run()
}
