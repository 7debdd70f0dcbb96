package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

func parseFixture(t *testing.T, path string) *packages.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	require.NoError(t, err)

	return &packages.Package{
		Fset:   fset,
		Syntax: []*ast.File{file},
	}
}

func parseSource(t *testing.T, source string) *packages.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "fixture.go", source, parser.ParseComments)
	require.NoError(t, err)

	return &packages.Package{
		Fset:   fset,
		Syntax: []*ast.File{file},
	}
}

func TestScanPackage(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("it should scan the coffee fixture", func(t *testing.T) {
		// GIVEN
		pkg := parseFixture(t, filepath.Join("etc", "gen", "coffee", "coffee.go"))

		// WHEN
		definition, err := scanPackage(&logger, pkg)

		// THEN
		require.NoError(t, err)
		require.NotNil(t, definition)
		assert.Equal(t, "coffee", definition.PackageName)
		assert.Equal(t, "Coffee", definition.StructName)
		assert.Equal(t, "coffee", definition.Named)
		assert.Equal(t, "c", definition.Receiver)
		require.Len(t, definition.Operations, 3)
		assert.Equal(t,
			OperationDefinition{MethodName: "prepare", Named: "prepare", ConstName: "OpPrepare", WrapperName: "Prepare"},
			definition.Operations[0],
		)
		assert.Equal(t,
			OperationDefinition{MethodName: "serve", Named: "serve", ConstName: "OpServe", WrapperName: "Serve"},
			definition.Operations[1],
		)
		assert.Equal(t,
			OperationDefinition{MethodName: "cleanup", Named: "cleanup", ConstName: "OpCleanup", WrapperName: "Cleanup"},
			definition.Operations[2],
		)
	})

	t.Run("it should return nil when no component is annotated", func(t *testing.T) {
		// GIVEN
		pkg := parseSource(t, `package demo

type Plain struct{}
`)

		// WHEN
		definition, err := scanPackage(&logger, pkg)

		// THEN
		require.NoError(t, err)
		assert.Nil(t, definition)
	})

	t.Run("it should default the component name to the lowercased struct name", func(t *testing.T) {
		// GIVEN
		pkg := parseSource(t, `package demo

import "github.com/a-peyrard/extend"

// @component
type Machine struct {
	component *extend.Component
}

// @extendable
func (m *Machine) start() error { return nil }
`)

		// WHEN
		definition, err := scanPackage(&logger, pkg)

		// THEN
		require.NoError(t, err)
		require.NotNil(t, definition)
		assert.Equal(t, "machine", definition.Named)
		assert.Equal(t, "m", definition.Receiver)
		require.Len(t, definition.Operations, 1)
		assert.Equal(t, "OpStart", definition.Operations[0].ConstName)
	})

	t.Run("it should reject a component struct without component field", func(t *testing.T) {
		// GIVEN
		pkg := parseSource(t, `package demo

// @component
type Machine struct {
	name string
}

// @extendable
func (m *Machine) start() error { return nil }
`)

		// WHEN
		_, err := scanPackage(&logger, pkg)

		// THEN
		require.Error(t, err)
		assert.Contains(t, err.Error(), "component *extend.Component")
	})

	t.Run("it should reject a component without extendable method", func(t *testing.T) {
		// GIVEN
		pkg := parseSource(t, `package demo

import "github.com/a-peyrard/extend"

// @component
type Machine struct {
	component *extend.Component
}
`)

		// WHEN
		_, err := scanPackage(&logger, pkg)

		// THEN
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no @extendable method")
	})

	t.Run("it should reject an extendable method with parameters", func(t *testing.T) {
		// GIVEN
		pkg := parseSource(t, `package demo

import "github.com/a-peyrard/extend"

// @component
type Machine struct {
	component *extend.Component
}

// @extendable
func (m *Machine) start(level int) error { return nil }
`)

		// WHEN
		_, err := scanPackage(&logger, pkg)

		// THEN
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not take parameters")
	})

	t.Run("it should reject duplicate operation names", func(t *testing.T) {
		// GIVEN
		pkg := parseSource(t, `package demo

import "github.com/a-peyrard/extend"

// @component
type Machine struct {
	component *extend.Component
}

// @extendable named="start"
func (m *Machine) start() error { return nil }

// @extendable named="start"
func (m *Machine) boot() error { return nil }
`)

		// WHEN
		_, err := scanPackage(&logger, pkg)

		// THEN
		require.Error(t, err)
		assert.Contains(t, err.Error(), "twice")
	})
}
