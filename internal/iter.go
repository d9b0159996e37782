package internal

import (
	"iter"
)

// FlatMap yields every value of expand(item), for each item of seq in order.
func FlatMap[S any, T any](seq iter.Seq[S], expand func(S) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range seq {
			for val := range expand(item) {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}
