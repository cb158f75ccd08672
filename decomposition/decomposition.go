package decomposition

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/intervalxt/iet"
	"github.com/katalvlaran/intervalxt/length"
)

// Decomposition owns the partition of the labels of an initial IET into
// components and drives their induction. It grows only by splitting a
// component into two; split components stay inspectable as Reducible nodes
// of the split tree.
//
// The zero value is not usable; build one with New or Decompose. Methods are
// not safe for concurrent use; concurrency, when enabled with WithWorkers,
// happens inside Run.
type Decomposition[L length.Length[L]] struct {
	opts  Options
	log   *slog.Logger
	nodes map[ComponentID]*Component[L]
}

// New creates the decomposition of t with a single root component and runs
// the classification checks on it, which may already split or classify it.
// No induction step is taken. t is cloned, the caller keeps its copy.
func New[L length.Length[L]](t *iet.IET[L], opts ...Option) (*Decomposition[L], error) {
	// 1. Validate input
	if t == nil {
		return nil, ErrNilIET
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Root component
	d := &Decomposition[L]{opts: o, log: o.logger(), nodes: make(map[ComponentID]*Component[L])}
	root, err := newRoot(t.Clone())
	if err != nil {
		return nil, err
	}
	d.nodes[root.id] = root
	created, err := d.settle(root)
	d.register(created)
	if err != nil {
		return nil, err
	}

	return d, nil
}

// Decompose is New followed by Run(budget).
func Decompose[L length.Length[L]](t *iet.IET[L], budget int, opts ...Option) (*Decomposition[L], error) {
	d, err := New(t, opts...)
	if err != nil {
		return nil, err
	}
	if err = d.Run(budget); err != nil {
		return d, err
	}

	return d, nil
}

// Run advances every undetermined component until it is classified, split,
// or has taken budget induction steps along its lineage. Budgets are per
// component: children inherit the step count of their parent, and the
// order in which components are processed does not affect the outcome.
//
// Components still undetermined afterwards report BudgetExhausted. Calling
// Run again with a larger budget resumes them where they stopped.
//
// Run fails with ErrNegativeBudget for a negative budget, with the context's
// error when it is cancelled, and with any induction error.
func (d *Decomposition[L]) Run(budget int) error {
	if budget < 0 {
		return errors.Wrapf(ErrNegativeBudget, "budget %d", budget)
	}
	for {
		batch := d.runnable(budget)
		if len(batch) == 0 {
			break
		}
		created, err := d.round(batch, budget)
		d.register(created)
		if err != nil {
			d.markExhausted(budget)
			return err
		}
	}
	d.markExhausted(budget)

	return nil
}

// Step applies a single Decomposition Step to the component id, ignoring
// any budget, and returns the IDs of the components it created. Stepping a
// classified component does nothing.
func (d *Decomposition[L]) Step(id ComponentID) ([]ComponentID, error) {
	c, ok := d.nodes[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownComponent, "%q", id)
	}
	created, err := d.step(c)
	d.register(created)
	ids := make([]ComponentID, len(created))
	for i, n := range created {
		ids[i] = n.id
	}

	return ids, err
}

// round advances each component of batch until it stops, sequentially or on
// up to Options.Workers goroutines. Components of a batch share no state,
// so the created components are the same either way; they are returned in
// batch order.
func (d *Decomposition[L]) round(batch []*Component[L], budget int) ([]*Component[L], error) {
	results := make([][]*Component[L], len(batch))
	var err error
	if d.opts.Workers < 2 || len(batch) == 1 {
		for i, c := range batch {
			if results[i], err = d.advance(c, budget); err != nil {
				break
			}
		}
	} else {
		var g errgroup.Group
		g.SetLimit(d.opts.Workers)
		for i, c := range batch {
			g.Go(func() error {
				var e error
				results[i], e = d.advance(c, budget)
				return e
			})
		}
		err = g.Wait()
	}

	var created []*Component[L]
	for _, r := range results {
		created = append(created, r...)
	}

	return created, err
}

// advance steps c until it is classified, splits, or reaches budget.
func (d *Decomposition[L]) advance(c *Component[L], budget int) ([]*Component[L], error) {
	for c.state == Undetermined && c.steps < budget {
		select {
		case <-d.opts.Ctx.Done():
			return nil, d.opts.Ctx.Err()
		default:
		}
		created, err := d.step(c)
		if err != nil || len(created) > 0 {
			return created, err
		}
	}

	return nil, nil
}

// runnable returns the undetermined leaves with budget left, by ID.
func (d *Decomposition[L]) runnable(budget int) []*Component[L] {
	var out []*Component[L]
	for _, c := range d.Components() {
		if c.state == Undetermined && c.steps < budget {
			out = append(out, c)
		}
	}

	return out
}

func (d *Decomposition[L]) markExhausted(budget int) {
	for _, c := range d.nodes {
		c.exhausted = c.state == Undetermined && c.steps >= budget
	}
}

func (d *Decomposition[L]) register(created []*Component[L]) {
	for _, c := range created {
		d.nodes[c.id] = c
	}
}

// Components returns the current partition: every component that has not
// been split, ordered by ID.
func (d *Decomposition[L]) Components() []*Component[L] {
	var out []*Component[L]
	for _, c := range d.nodes {
		if len(c.children) == 0 {
			out = append(out, c)
		}
	}
	sortByID(out)

	return out
}

// All returns every component ever created, Reducible ones included,
// ordered by ID.
func (d *Decomposition[L]) All() []*Component[L] {
	out := make([]*Component[L], 0, len(d.nodes))
	for _, c := range d.nodes {
		out = append(out, c)
	}
	sortByID(out)

	return out
}

// Lookup returns the component id.
func (d *Decomposition[L]) Lookup(id ComponentID) (*Component[L], error) {
	c, ok := d.nodes[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownComponent, "%q", id)
	}

	return c, nil
}

// Summaries returns the summary of every component of the partition.
func (d *Decomposition[L]) Summaries() []Summary {
	comps := d.Components()
	out := make([]Summary, len(comps))
	for i, c := range comps {
		out[i] = c.Summary()
	}

	return out
}

// Done reports whether every component of the partition is classified.
func (d *Decomposition[L]) Done() bool {
	for _, c := range d.Components() {
		if c.state == Undetermined {
			return false
		}
	}

	return true
}

// String renders one line per component of the partition, e.g.
//
//	0.0 periodic labels=A,B steps=2 connections=1
//	0.1 undetermined(budget) labels=C,D steps=10 connections=0
func (d *Decomposition[L]) String() string {
	comps := d.Components()
	lines := make([]string, len(comps))
	for i, c := range comps {
		state := c.state.String()
		if c.exhausted {
			state += "(budget)"
		}
		lines[i] = fmt.Sprintf("%s %s labels=%s steps=%d connections=%d",
			c.id, state, labelString(c.labels), c.steps, len(c.graph.Connections()))
	}

	return strings.Join(lines, "\n")
}

func sortByID[L length.Length[L]](cs []*Component[L]) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].id < cs[j].id })
}

func labelString(labels []iet.Label) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = l.String()
	}

	return strings.Join(parts, ",")
}
