package domain

// TutorialStep is one page of the guided walkthrough over the diagram
type TutorialStep struct {
	ID      string
	Label   string
	Nodes   []NodeID
	Edges   []EdgeID
	Callout *Callout
}

// Callout is a floating annotation attached to a node during a step
type Callout struct {
	Text       string
	Target     NodeID
	ClickBadge bool
}

// Highlights returns the step's highlighted nodes as a set
func (s TutorialStep) Highlights() NodeSet {
	return NewNodeSet(s.Nodes...)
}
