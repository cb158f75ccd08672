// Package decomposition splits an interval exchange transformation into
// dynamically independent components and classifies each of them.
//
// What
//
//   - New / Decompose: build the decomposition of an iet.IET; Decompose also
//     runs it with a step budget.
//   - Run: repeat accelerated induction on every undetermined component until
//     it is classified or its lineage has used the budget. Resumable.
//   - Step: one manual Decomposition Step on one component.
//   - Components / All / Lookup / Summaries / String: inspect the partition
//     and the split tree.
//   - Folds / Table: move counts per lineage and a tabular report.
//
// A Decomposition Step on a component is one iet.ApplyInductionStep. A
// connection event records a separatrix connection and retires a label.
// Afterwards the component is checked, in order:
//
//  1. one label left: Periodic
//  2. a common prefix of both rows: split into two children, parent Reducible
//  3. irreducible with rationally independent lengths: Keane
//  4. a configuration equal to an earlier one up to scaling: Keane
//
// Component IDs are paths in the split tree ("0", "0.0", "0.1", ...), so they
// and all results are the same whatever the processing order. With
// WithWorkers(n), components of one round are advanced on up to n goroutines
// via errgroup; each goroutine owns its component exclusively.
//
// Logging
//
//	Structured records go to the slog.Logger set by WithLogger: Debug per
//	step, Info per split and per classification. Nothing is logged by
//	default.
//
// Complexity
//
//   - Step: O(n) length operations plus O(n²·w) exact elimination for the
//     Keane check, done once per label count of a component.
//   - Repeat detection: O(n) per step, memory O(steps·n) per component.
//
// Errors
//
//   - ErrNilIET            nil input
//   - ErrNegativeBudget    Run with budget < 0
//   - ErrUnknownComponent  Step / Lookup / Folds of an ID not in the tree
//   - context errors from WithContext, and wrapped iet or length errors
package decomposition
