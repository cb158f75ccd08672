package decomposition

import (
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/intervalxt/length"
)

// Folds returns the number of elementary Rauzy–Veech moves performed along
// the lineage of component id, ancestors included.
func (d *Decomposition[L]) Folds(id ComponentID) (*big.Int, error) {
	c, err := d.Lookup(id)
	if err != nil {
		return nil, err
	}
	total := new(big.Int)
	for c != nil {
		for _, res := range c.history {
			total.Add(total, res.FoldCount)
		}
		c = d.nodes[c.parent]
	}

	return total, nil
}

// Table renders the partition as a borderless table with one row per
// component, for terminals and logs. String stays the stable rendering.
func (d *Decomposition[L]) Table() string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.SeparateRows = false

	tbl.AppendHeader(table.Row{"component", "classification", "labels", "steps", "moves", "connections"})
	comps := d.Components()
	for _, c := range comps {
		state := c.state.String()
		if c.exhausted {
			state += " (budget)"
		}
		folds, _ := d.Folds(c.id)
		tbl.AppendRow(table.Row{
			string(c.id),
			state,
			labelString(c.labels),
			humanize.Comma(int64(c.steps)),
			humanize.BigComma(folds),
			len(c.graph.Connections()),
		})
	}
	tbl.AppendFooter(table.Row{"total", summarize(comps)})

	return tbl.Render()
}

// summarize counts components per classification, e.g. "2 periodic, 1 keane".
func summarize[L length.Length[L]](comps []*Component[L]) string {
	counts := make(map[Classification]int)
	for _, c := range comps {
		counts[c.state]++
	}
	var parts []string
	for _, s := range []Classification{Periodic, Keane, Undetermined} {
		if n := counts[s]; n > 0 {
			parts = append(parts, humanize.Comma(int64(n))+" "+s.String())
		}
	}

	return strings.Join(parts, ", ")
}
