package extend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExtension(t *testing.T) {
	t.Run("it should attach itself to the component at construction", func(t *testing.T) {
		// GIVEN
		var journal []string
		component := newCoffeeLike(t, &journal)

		// WHEN
		milk, err := NewExtension(component, "milk",
			WithHandler("prepare", recordingHandler(&journal, "milk.prepare")),
		)

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "milk", milk.Name())
		assert.Same(t, component, milk.Component())
		require.Len(t, component.Extensions(), 1)
		assert.Same(t, milk, component.Extensions()[0])
	})

	t.Run("it should accept an extension with no handler at all", func(t *testing.T) {
		// GIVEN
		var journal []string
		component := newCoffeeLike(t, &journal)

		// WHEN
		mute, err := NewExtension(component, "mute")
		require.NoError(t, err)
		_, err = component.Invoke("prepare")

		// THEN
		require.NoError(t, err)
		assert.Empty(t, mute.Handles())
		assert.Equal(t, []string{"base.prepare"}, journal)
	})

	t.Run("it should list handled operations in registration order", func(t *testing.T) {
		// GIVEN
		var journal []string
		component := newCoffeeLike(t, &journal)

		// WHEN
		milk, err := NewExtension(component, "milk",
			WithHandler("serve", recordingHandler(&journal, "milk.serve")),
			WithHandler("prepare", recordingHandler(&journal, "milk.prepare")),
		)

		// THEN
		require.NoError(t, err)
		assert.Equal(t, []Op{"serve", "prepare"}, milk.Handles())
	})

	t.Run("it should reject a nil handler", func(t *testing.T) {
		// GIVEN
		var journal []string
		component := newCoffeeLike(t, &journal)

		// WHEN
		_, err := NewExtension(component, "milk", WithHandler("prepare", nil))

		// THEN
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nil handler")
	})

	t.Run("it should reject two handlers for the same operation", func(t *testing.T) {
		// GIVEN
		var journal []string
		component := newCoffeeLike(t, &journal)

		// WHEN
		_, err := NewExtension(component, "milk",
			WithHandler("prepare", recordingHandler(&journal, "first")),
			WithHandler("prepare", recordingHandler(&journal, "second")),
		)

		// THEN
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateOp)
	})

	t.Run("it should reject a nil component", func(t *testing.T) {
		// WHEN
		_, err := NewExtension(nil, "milk")

		// THEN
		require.Error(t, err)
	})
}
