// Package slices contains helpers to transform slices.
package slices

// Map maps values of a slice using the specified mapper.
func Map[F any, T any](original []F, mapper func(F) T) []T {
	destination := make([]T, len(original))
	for i := 0; i < len(original); i++ {
		destination[i] = mapper(original[i])
	}
	return destination
}

// Filter returns a new slice containing only the elements for which the predicate function returns true.
func Filter[T any](slice []T, predicate func(T) bool) []T {
	var result []T
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}
