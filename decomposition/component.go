package decomposition

import (
	"sort"

	"github.com/katalvlaran/intervalxt/iet"
	"github.com/katalvlaran/intervalxt/length"
	"github.com/katalvlaran/intervalxt/separatrix"
)

// Component is a sub-IET that induction has not separated further, with
// the separatrices and connections discovered for it and its
// classification.
//
// A component never references another component; its relation to the rest
// of the decomposition is given by its ID, its parent ID and its original
// label set. Accessors return copies or read-only views; the component is
// mutated only by its Decomposition.
type Component[L length.Length[L]] struct {
	id       ComponentID
	parent   ComponentID
	children []ComponentID

	// labels is the original label set: active labels plus every retired
	// label absorbed into one of them. Fixed at creation.
	labels []iet.Label

	iet      *iet.IET[L]
	graph    *separatrix.Graph
	absorbed map[iet.Label]iet.Label // retired label -> surviving label

	state     Classification
	steps     int
	exhausted bool
	history   []iet.InductionResult

	repeats   *repeatDetector
	keaneSize int // label count at the last Keane check, 0 if never checked
}

// ID returns the component's position in the split tree.
func (c *Component[L]) ID() ComponentID { return c.id }

// Parent returns the parent's ID, or "" for the root.
func (c *Component[L]) Parent() ComponentID { return c.parent }

// Children returns the IDs of the two children of a Reducible component,
// or nil.
func (c *Component[L]) Children() []ComponentID {
	return append([]ComponentID(nil), c.children...)
}

// Labels returns the original label set in increasing order.
func (c *Component[L]) Labels() []iet.Label {
	return append([]iet.Label(nil), c.labels...)
}

// IET returns the component's current interval exchange. A Reducible
// component keeps the state it had when it split. The returned value is
// shared; callers must not mutate it.
func (c *Component[L]) IET() *iet.IET[L] { return c.iet }

// Graph returns the component's separatrix graph. The returned value is
// shared; callers must not mutate it.
func (c *Component[L]) Graph() *separatrix.Graph { return c.graph }

// Classification returns the current classification.
func (c *Component[L]) Classification() Classification { return c.state }

// Steps returns the number of induction steps taken along the lineage of
// this component, including those of its ancestors.
func (c *Component[L]) Steps() int { return c.steps }

// BudgetExhausted reports whether the component is Undetermined because the
// last Run ran out of step budget.
func (c *Component[L]) BudgetExhausted() bool { return c.exhausted }

// History returns the induction steps taken by this component itself.
func (c *Component[L]) History() []iet.InductionResult {
	return append([]iet.InductionResult(nil), c.history...)
}

// Summary returns the reportable state of c.
func (c *Component[L]) Summary() Summary {
	return Summary{
		ID:              c.id,
		Labels:          c.Labels(),
		Classification:  c.state,
		Steps:           c.steps,
		BudgetExhausted: c.exhausted,
		Separatrices:    c.graph.Separatrices(),
		Connections:     c.graph.Connections(),
	}
}

// survivor follows absorptions from l to the active label it ended up in.
func (c *Component[L]) survivor(l iet.Label) iet.Label {
	for {
		next, ok := c.absorbed[l]
		if !ok {
			return l
		}
		l = next
	}
}

// newRoot builds the root component for t, which it takes ownership of.
func newRoot[L length.Length[L]](t *iet.IET[L]) (*Component[L], error) {
	labels := t.Labels()
	g, err := separatrix.NewGraph(labels...)
	if err != nil {
		return nil, err
	}

	return &Component[L]{
		id:       RootID,
		labels:   labels,
		iet:      t,
		graph:    g,
		absorbed: make(map[iet.Label]iet.Label),
		repeats:  newRepeatDetector(),
	}, nil
}

// newChild builds the child of parent that owns sub, inheriting the labels
// absorbed into sub's labels, their separatrices and connections, and the
// parent's step count.
func newChild[L length.Length[L]](parent *Component[L], id ComponentID, sub *iet.IET[L]) *Component[L] {
	owns := func(l iet.Label) bool { return sub.Has(parent.survivor(l)) }

	var labels []iet.Label
	for _, l := range parent.labels {
		if owns(l) {
			labels = append(labels, l)
		}
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	absorbed := make(map[iet.Label]iet.Label)
	for from, to := range parent.absorbed {
		if owns(from) {
			absorbed[from] = to
		}
	}

	return &Component[L]{
		id:       id,
		parent:   parent.id,
		labels:   labels,
		iet:      sub,
		graph:    parent.graph.Restrict(owns),
		absorbed: absorbed,
		steps:    parent.steps,
		repeats:  newRepeatDetector(),
	}
}
