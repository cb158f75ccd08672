package separatrix

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/intervalxt/iet"
)

// record is one arena slot.
type record struct {
	sep     Separatrix
	retired bool
}

// Graph is an append-only arena of separatrices and the connections between
// them. Separatrices are addressed by their arena ID; connections store the
// separatrix values themselves, so retiring a label never invalidates a
// recorded connection. Nothing is ever removed.
//
// A Graph is not safe for concurrent mutation.
type Graph struct {
	records     []record
	index       map[Separatrix]ID
	connections []Connection
	seen        map[[2]Separatrix]struct{}
}

// NewGraph returns a graph holding the four separatrices of every label in
// labels, in the given order.
func NewGraph(labels ...iet.Label) (*Graph, error) {
	g := &Graph{
		index: make(map[Separatrix]ID, 4*len(labels)),
		seen:  make(map[[2]Separatrix]struct{}),
	}
	for _, l := range labels {
		if err := g.Add(l); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Add appends the four separatrices of l. It fails with ErrDuplicateLabel
// if l is already present, retired or not.
func (g *Graph) Add(l iet.Label) error {
	seps := Of(l)
	if _, ok := g.index[seps[0]]; ok {
		return errors.Wrapf(ErrDuplicateLabel, "label %s", l)
	}
	for _, s := range seps {
		g.index[s] = ID(len(g.records))
		g.records = append(g.records, record{sep: s})
	}

	return nil
}

// Retire marks the separatrices of l as retired. Their records and every
// connection touching them stay in the graph.
func (g *Graph) Retire(l iet.Label) error {
	for _, s := range Of(l) {
		id, ok := g.index[s]
		if !ok {
			return errors.Wrapf(ErrUnknownSeparatrix, "%s", s)
		}
		g.records[id].retired = true
	}

	return nil
}

// Connect records the connection src → dst found at step. Both must be in
// the graph; the same ordered pair cannot be recorded twice.
func (g *Graph) Connect(src, dst Separatrix, step int) error {
	if err := g.CanConnect(src, dst); err != nil {
		return err
	}
	g.seen[[2]Separatrix{src, dst}] = struct{}{}
	g.connections = append(g.connections, Connection{Source: src, Target: dst, Step: step})

	return nil
}

// CanConnect reports the error Connect(src, dst, ...) would return, without
// recording anything.
func (g *Graph) CanConnect(src, dst Separatrix) error {
	for _, s := range [2]Separatrix{src, dst} {
		if _, ok := g.index[s]; !ok {
			return errors.Wrapf(ErrUnknownSeparatrix, "%s", s)
		}
	}
	if _, dup := g.seen[[2]Separatrix{src, dst}]; dup {
		return errors.Wrapf(ErrDuplicateConnection, "%s -> %s", src, dst)
	}

	return nil
}

// Lookup returns the arena ID of s.
func (g *Graph) Lookup(s Separatrix) (ID, bool) {
	id, ok := g.index[s]

	return id, ok
}

// At returns the separatrix stored at id.
func (g *Graph) At(id ID) (Separatrix, error) {
	if id < 0 || int(id) >= len(g.records) {
		return Separatrix{}, errors.Wrapf(ErrUnknownSeparatrix, "id %d", id)
	}

	return g.records[id].sep, nil
}

// IsRetired reports whether s belongs to a retired label.
func (g *Graph) IsRetired(s Separatrix) bool {
	id, ok := g.index[s]

	return ok && g.records[id].retired
}

// Len returns the number of separatrices in the arena.
func (g *Graph) Len() int { return len(g.records) }

// Separatrices returns every separatrix in arena order.
func (g *Graph) Separatrices() []Separatrix {
	out := make([]Separatrix, len(g.records))
	for i, r := range g.records {
		out[i] = r.sep
	}

	return out
}

// Active returns the separatrices of labels that are not retired.
func (g *Graph) Active() []Separatrix {
	out := make([]Separatrix, 0, len(g.records))
	for _, r := range g.records {
		if !r.retired {
			out = append(out, r.sep)
		}
	}

	return out
}

// Connections returns the connections in the order they were recorded.
func (g *Graph) Connections() []Connection {
	return append([]Connection(nil), g.connections...)
}

// Restrict returns a new graph with the records of the labels selected by
// keep and the connections whose two endpoints are both kept. Arena order,
// retirement flags and connection order are preserved; IDs are renumbered
// densely.
func (g *Graph) Restrict(keep func(iet.Label) bool) *Graph {
	out := &Graph{
		index: make(map[Separatrix]ID),
		seen:  make(map[[2]Separatrix]struct{}),
	}
	for _, r := range g.records {
		if keep(r.sep.Label) {
			out.index[r.sep] = ID(len(out.records))
			out.records = append(out.records, r)
		}
	}
	for _, c := range g.connections {
		if keep(c.Source.Label) && keep(c.Target.Label) {
			out.seen[[2]Separatrix{c.Source, c.Target}] = struct{}{}
			out.connections = append(out.connections, c)
		}
	}

	return out
}

// Chains groups the separatrices that take part in at least one connection
// into classes joined by connections, ignoring direction. Each class lists
// its members in arena order; classes are ordered by their first member.
//
// Time O(S + C) for S separatrices and C connections.
func (g *Graph) Chains() [][]Separatrix {
	adj := make(map[ID][]ID, 2*len(g.connections))
	for _, c := range g.connections {
		u, v := g.index[c.Source], g.index[c.Target]
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	seen := make(map[ID]bool, len(adj))
	var chains [][]Separatrix
	for id := range g.records {
		start := ID(id)
		if seen[start] || len(adj[start]) == 0 {
			continue
		}
		// BFS over the undirected connection graph
		queue := []ID{start}
		seen[start] = true
		var members []ID
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			members = append(members, u)
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
		chain := make([]Separatrix, len(members))
		for i, m := range members {
			chain[i] = g.records[m].sep
		}
		chains = append(chains, chain)
	}

	return chains
}

// String lists the connections one per line, in recording order.
func (g *Graph) String() string {
	lines := make([]string, len(g.connections))
	for i, c := range g.connections {
		lines[i] = c.String()
	}

	return strings.Join(lines, "\n")
}
