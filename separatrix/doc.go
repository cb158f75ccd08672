// Package separatrix records the endpoints of intervals as separatrices and
// the coincidences discovered between them during induction as connections.
//
// What
//
//   - Separatrix: the left or right endpoint of a label's interval on the top
//     or bottom row. Every label contributes four.
//   - Graph: an append-only arena of separatrices addressed by dense IDs,
//     plus the connections recorded between them. Labels retired by a
//     connection keep their records, so history is never lost.
//   - Restrict: the sub-graph owned by the labels of one part of a split.
//   - Chains: separatrices grouped by being joined through connections.
//
// Complexity (S = separatrices, C = connections)
//
//   - NewGraph, Restrict: O(S + C)
//   - Add, Retire, Connect, Lookup: O(1)
//   - Chains: O(S + C)
//
// Errors
//
//   - ErrUnknownSeparatrix    separatrix or ID not in the graph
//   - ErrDuplicateLabel       Add of a label already present
//   - ErrDuplicateConnection  the same ordered pair recorded twice
package separatrix
