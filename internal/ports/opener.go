package ports

// DocumentOpener opens the screen or file behind a node's href
type DocumentOpener interface {
	// URI resolves an href against the configured base
	URI(href string) (string, error)

	// Open hands the resolved URI to the desktop
	Open(href string) error
}
