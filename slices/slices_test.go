package slices

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	t.Run("it should map all elements", func(t *testing.T) {
		// GIVEN
		input := []int{1, 2, 3}

		// WHEN
		result := Map(input, strconv.Itoa)

		// THEN
		assert.Equal(t, []string{"1", "2", "3"}, result)
	})

	t.Run("it should handle empty slices", func(t *testing.T) {
		// WHEN
		result := Map([]int{}, strconv.Itoa)

		// THEN
		assert.Empty(t, result)
	})
}

func TestFilter(t *testing.T) {
	t.Run("it should keep matching elements only", func(t *testing.T) {
		// GIVEN
		input := []int{1, 2, 3, 4, 5}

		// WHEN
		result := Filter(input, func(i int) bool { return i%2 == 0 })

		// THEN
		assert.Equal(t, []int{2, 4}, result)
	})

	t.Run("it should return nil when nothing matches", func(t *testing.T) {
		// WHEN
		result := Filter([]int{1, 3}, func(i int) bool { return i%2 == 0 })

		// THEN
		assert.Nil(t, result)
	})
}
