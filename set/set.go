// Package set provides a minimal generic set.
package set

// Set represents a generic set data structure
type Set[T comparable] map[T]struct{}

// New creates a new empty set
func New[T comparable]() Set[T] {
	return make(Set[T])
}

// NewWithValues creates a new set with the given values
func NewWithValues[T comparable](values ...T) Set[T] {
	s := New[T]()
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add adds a value to the set
func (s Set[T]) Add(value T) {
	s[value] = struct{}{}
}

// Contains checks if a value exists in the set
func (s Set[T]) Contains(value T) bool {
	_, exists := s[value]
	return exists
}

// Size returns the number of elements in the set
func (s Set[T]) Size() int {
	return len(s)
}

// ToSlice returns all values as a slice
func (s Set[T]) ToSlice() []T {
	result := make([]T, 0, len(s))
	for value := range s {
		result = append(result, value)
	}
	return result
}
