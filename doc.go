// Package intervalxt decomposes interval exchange transformations with exact
// arithmetic.
//
// An interval exchange transformation (IET) cuts an interval into labelled
// pieces and lays them out again in another order. Repeated Rauzy–Veech
// induction either finds coincidences of interval endpoints (separatrix
// connections), splits the IET into independent parts, or proves that no
// connection will ever form.
//
// Everything is organized under four subpackages:
//
//	length/         exact length backends: Int[T], BigInt, Rat, Quadratic, Decimal
//	iet/            the IET value, reducibility, elementary and accelerated induction
//	separatrix/     separatrices, connections and their arena graph
//	decomposition/  the component tree, classification and the budgeted driver
//
// Quick start:
//
//	lengths, _ := length.Ints[int64](18, 3)
//	t, _ := iet.FromLengths(lengths...)
//	d, _ := decomposition.Decompose(t, 100)
//	fmt.Println(d)
//	// 0 periodic labels=A,B steps=2 connections=1
//
// All arithmetic is exact; no floating point value ever decides the outcome
// of a comparison.
package intervalxt
