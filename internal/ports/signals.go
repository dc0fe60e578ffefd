package ports

// SignalName identifies a cross-component notification
type SignalName string

const (
	// SignalMenuTour asks the navigation to start its tour at Step
	SignalMenuTour SignalName = "menu-tour"
	// SignalMenuTourEnter reports that the navigation tour has started
	SignalMenuTourEnter SignalName = "menu-tour-enter"
	// SignalMenuTourClear resets every tour highlight
	SignalMenuTourClear SignalName = "menu-tour-clear"
)

// Signal is a fire-and-forget notification. Publishers never wait for
// a reply.
type Signal struct {
	Name SignalName
	Step int
}

// Subscription receives the signals it was registered for until Cancel
type Subscription interface {
	ID() string
	Signals() <-chan Signal
	Cancel()
}

// SignalBus connects signal publishers to subscribers by name
type SignalBus interface {
	Publish(sig Signal)
	Subscribe(names ...SignalName) Subscription
}
