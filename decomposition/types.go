package decomposition

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/intervalxt/iet"
	"github.com/katalvlaran/intervalxt/separatrix"
)

var (
	// ErrNilIET indicates a nil *iet.IET was passed to New or Decompose.
	ErrNilIET = errors.New("decomposition: iet is nil")

	// ErrNegativeBudget indicates a negative step budget.
	ErrNegativeBudget = errors.New("decomposition: step budget must not be negative")

	// ErrUnknownComponent indicates a component ID that is not part of the
	// decomposition.
	ErrUnknownComponent = errors.New("decomposition: unknown component")
)

// Classification is the state of a component. Undetermined is the only
// non-terminal state.
type Classification int

const (
	// Undetermined: induction has neither finished nor been certified to run
	// forever. With Component.BudgetExhausted set it means the step budget ran
	// out; a larger budget may resolve it.
	Undetermined Classification = iota

	// Periodic: induction reduced the component to a single interval through
	// connections, so every orbit is periodic.
	Periodic

	// Keane: the component is certified never to produce a connection.
	Keane

	// Reducible: the component was split into two children and retired.
	Reducible
)

// String returns the lower-case name of c.
func (c Classification) String() string {
	switch c {
	case Undetermined:
		return "undetermined"
	case Periodic:
		return "periodic"
	case Keane:
		return "keane"
	case Reducible:
		return "reducible"
	default:
		return "unknown"
	}
}

// Terminal reports whether c can no longer change.
func (c Classification) Terminal() bool { return c != Undetermined }

// ComponentID names a component by its position in the split tree: the root
// is "0" and the children of X are "X.0" (left part) and "X.1" (right part).
// It depends only on the split history, never on processing order.
type ComponentID string

// RootID is the ID of the component created from the initial IET.
const RootID ComponentID = "0"

// child returns the ID of the i-th child of id.
func (id ComponentID) child(i int) ComponentID {
	if i == 0 {
		return id + ".0"
	}

	return id + ".1"
}

// Summary is the reportable state of one component.
type Summary struct {
	ID              ComponentID
	Labels          []iet.Label
	Classification  Classification
	Steps           int
	BudgetExhausted bool
	Separatrices    []separatrix.Separatrix
	Connections     []separatrix.Connection
}
