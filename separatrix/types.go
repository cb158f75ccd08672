package separatrix

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/intervalxt/iet"
)

var (
	// ErrUnknownSeparatrix indicates an operation referenced a separatrix
	// that was never added to the graph.
	ErrUnknownSeparatrix = errors.New("separatrix: unknown separatrix")

	// ErrDuplicateLabel indicates Add was called twice for one label.
	ErrDuplicateLabel = errors.New("separatrix: label already present")

	// ErrDuplicateConnection indicates the same source and target were
	// connected twice.
	ErrDuplicateConnection = errors.New("separatrix: connection already recorded")
)

// End selects the left or right endpoint of an interval.
type End int

const (
	// Left is the left endpoint.
	Left End = iota
	// Right is the right endpoint.
	Right
)

// String returns "left" or "right".
func (e End) String() string {
	if e == Left {
		return "left"
	}

	return "right"
}

// Separatrix is the singular ray anchored at one endpoint of one interval on
// one side. It is a comparable value: two separatrices are the same iff
// their fields are equal, which keeps historical connections meaningful after
// the label is retired.
type Separatrix struct {
	Label iet.Label
	Side  iet.Side
	End   End
}

// String renders the separatrix as "A:top:right".
func (s Separatrix) String() string {
	return fmt.Sprintf("%s:%s:%s", s.Label, s.Side, s.End)
}

// Of returns the four separatrices of label l in arena order: top left, top
// right, bottom left, bottom right.
func Of(l iet.Label) [4]Separatrix {
	return [4]Separatrix{
		{Label: l, Side: iet.Top, End: Left},
		{Label: l, Side: iet.Top, End: Right},
		{Label: l, Side: iet.Bottom, End: Left},
		{Label: l, Side: iet.Bottom, End: Right},
	}
}

// ID is the stable index of a separatrix in the arena of its Graph.
type ID int

// Connection is a directed identification Source → Target, recorded at
// induction step Step of the owning component.
type Connection struct {
	Source Separatrix
	Target Separatrix
	Step   int
}

// String renders the connection as "B:top:right -> A:bot:right @2".
func (c Connection) String() string {
	return fmt.Sprintf("%s -> %s @%d", c.Source, c.Target, c.Step)
}
