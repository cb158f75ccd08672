package decomposition

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/intervalxt/iet"
	"github.com/katalvlaran/intervalxt/separatrix"
)

// step applies one Decomposition Step to c: an accelerated induction move on
// its IET, the matching graph update, and the classification transitions
// that follow. It returns the components created by a split, in creation
// order. A component that is already classified is left untouched.
func (d *Decomposition[L]) step(c *Component[L]) ([]*Component[L], error) {
	if c.state.Terminal() {
		return nil, nil
	}

	// 1. A coming connection must be recordable before the IET changes.
	// Retire cannot fail once src is known to the graph.
	if a, b, ok := c.iet.PendingConnection(); ok {
		if err := c.graph.CanConnect(connectionEnds(a, b)); err != nil {
			return nil, errors.Wrapf(err, "decomposition: component %s", c.id)
		}
	}

	// 2. Induction; atomic, so a failure leaves c unchanged
	res, err := c.iet.ApplyInductionStep()
	if err != nil {
		return nil, errors.Wrapf(err, "decomposition: component %s", c.id)
	}
	c.steps++
	c.history = append(c.history, res)

	// 3. Connection: the right endpoints of the two rightmost intervals met
	if res.Connection {
		src, dst := connectionEnds(res.Loser, res.Winner)
		if err = c.graph.Connect(src, dst, c.steps); err != nil {
			return nil, errors.Wrapf(err, "decomposition: component %s", c.id)
		}
		if err = c.graph.Retire(res.Loser); err != nil {
			return nil, errors.Wrapf(err, "decomposition: component %s", c.id)
		}
		if res.Loser != res.Winner {
			c.absorbed[res.Loser] = res.Winner
		}
		c.repeats.reset()
	}

	d.log.Debug("decomposition: step",
		"component", string(c.id),
		"step", c.steps,
		"result", res.String(),
		"labels", c.iet.Size(),
	)
	if d.opts.OnStep != nil {
		d.opts.OnStep(c.id, c.steps, res)
	}

	// 4. Classification transitions
	return d.settle(c)
}

// connectionEnds returns the separatrices joined when the top label a meets
// the bottom label b: the right end of a on top and of b on the bottom.
func connectionEnds(a, b iet.Label) (src, dst separatrix.Separatrix) {
	return separatrix.Separatrix{Label: a, Side: iet.Top, End: separatrix.Right},
		separatrix.Separatrix{Label: b, Side: iet.Bottom, End: separatrix.Right}
}

// settle runs the classification checks on an undetermined component:
// single interval, reducibility, rational independence, configuration
// repeat, in that order. It returns the components created by a split.
func (d *Decomposition[L]) settle(c *Component[L]) ([]*Component[L], error) {
	// 1. One interval left: every orbit returns
	if c.iet.Size() == 1 {
		d.classify(c, Periodic)
		return nil, nil
	}

	// 2. Invariant prefix: split into two independent components
	if k := c.iet.ReducingPrefix(); k > 0 {
		return d.split(c, k)
	}

	// 3. Rational independence, once per label set
	if d.opts.KeaneCheck && c.keaneSize != c.iet.Size() {
		c.keaneSize = c.iet.Size()
		if certifyKeane(c.iet) {
			d.classify(c, Keane)
			return nil, nil
		}
	}

	// 4. Scaled repeat of an earlier configuration: induction runs forever
	if d.opts.RepeatDetection {
		key, err := fingerprint(c.iet)
		if err != nil {
			return nil, errors.Wrapf(err, "decomposition: component %s", c.id)
		}
		if c.repeats.observe(key) {
			d.classify(c, Keane)
			return nil, nil
		}
	}

	return nil, nil
}

// split cuts c after its common prefix of size k, retires c as Reducible
// and settles the two children. The result lists the children and anything
// their own settling created.
func (d *Decomposition[L]) split(c *Component[L], k int) ([]*Component[L], error) {
	left, right, err := c.iet.Split(k)
	if err != nil {
		return nil, errors.Wrapf(err, "decomposition: component %s", c.id)
	}
	lc := newChild(c, c.id.child(0), left)
	rc := newChild(c, c.id.child(1), right)
	c.children = []ComponentID{lc.id, rc.id}

	d.log.Info("decomposition: split",
		"component", string(c.id),
		"left", labelString(lc.labels),
		"right", labelString(rc.labels),
	)
	if d.opts.OnSplit != nil {
		d.opts.OnSplit(c.id, lc.id, rc.id)
	}
	d.classify(c, Reducible)

	created := []*Component[L]{lc, rc}
	for _, child := range []*Component[L]{lc, rc} {
		more, err := d.settle(child)
		if err != nil {
			return created, err
		}
		created = append(created, more...)
	}

	return created, nil
}

// classify moves c into the terminal state s.
func (d *Decomposition[L]) classify(c *Component[L], s Classification) {
	c.state = s
	c.exhausted = false
	d.log.Info("decomposition: classified",
		"component", string(c.id),
		"classification", s.String(),
		"steps", c.steps,
	)
	if d.opts.OnClassify != nil {
		d.opts.OnClassify(c.id, s)
	}
}
