// Package analytics holds pure transformations over session collections:
// filtering, ordering, grouping and aggregation. No function mutates its
// input and every function returns the zero value for empty input.
package analytics

// Fold reduces xs left to right, starting from init.
func Fold[T, A any](xs []T, init A, f func(A, T) A) A {
	acc := init
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// filter returns the elements of xs that satisfy keep, in order.
func filter[T any](xs []T, keep func(T) bool) []T {
	return Fold(xs, []T(nil), func(acc []T, x T) []T {
		if keep(x) {
			return append(acc, x)
		}
		return acc
	})
}
