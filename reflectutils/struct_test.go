package reflectutils

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	outer struct {
		Name   string
		Nested *inner
	}
	inner struct {
		Value int
	}
)

func TestWalkStruct(t *testing.T) {
	t.Run("it should visit all exported fields with their path", func(t *testing.T) {
		// GIVEN
		element := &outer{Name: "waldo", Nested: &inner{Value: 42}}
		var visited []string

		// WHEN
		WalkStruct(element, func(_ reflect.Value, _ reflect.Type, path []string) {
			visited = append(visited, strings.Join(path, "."))
		})

		// THEN
		assert.Contains(t, visited, "Name")
		assert.Contains(t, visited, "Nested")
		assert.Contains(t, visited, "Nested.Value")
	})

	t.Run("it should create nil nested structs when asked to", func(t *testing.T) {
		// GIVEN
		element := &outer{Name: "waldo"}

		// WHEN
		WalkStruct(element, CreateNilStructs)

		// THEN
		require.NotNil(t, element.Nested)
		assert.Equal(t, 0, element.Nested.Value)
	})
}

func TestDeref(t *testing.T) {
	t.Run("it should dereference pointers recursively", func(t *testing.T) {
		// GIVEN
		value := 42
		ptr := &value
		ptrPtr := &ptr

		// WHEN
		result := Deref(reflect.ValueOf(ptrPtr))

		// THEN
		assert.Equal(t, reflect.Int, result.Kind())
		assert.Equal(t, int64(42), result.Int())
	})
}
