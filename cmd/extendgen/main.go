// extendgen generates the typed surface of a component: operation constants,
// the component declaration helper, and one exported wrapper method per
// extendable operation.
//
// It is meant to be run through go:generate from the file holding a struct
// annotated with @component, whose methods annotated with @extendable are the
// base implementations:
//
//	//go:generate go run github.com/a-peyrard/extend/cmd/extendgen
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/tools/go/packages"

	"github.com/a-peyrard/extend/slices"
)

func main() {
	dryRun := os.Getenv("DRY_RUN") == "true"

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}).
		With().
		Timestamp().
		Logger()

	// capture the target file/package, where the generator is invoked
	targetFile := os.Getenv("GOFILE")
	targetPackage := os.Getenv("GOPACKAGE")
	if targetFile == "" {
		logger.Error().Msg("GOFILE is not set, extendgen must be run through go:generate")
		os.Exit(1)
	}
	currentDir, _ := os.Getwd()
	targetFilePath := filepath.Join(currentDir, targetFile)

	startScan := time.Now()

	cfg := &packages.Config{
		Mode: packages.NeedFiles | packages.NeedSyntax,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load the target package")
		os.Exit(1)
	}

	var definition *ComponentDefinition
	for _, pkg := range pkgs {
		logger := logger.With().Str("package", pkg.ID).Logger()
		logger.Debug().Msg("Scanning package")

		found, err := scanPackage(&logger, pkg)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to scan package")
			os.Exit(1)
		}
		if found != nil {
			definition = found
		}
	}

	if definition == nil {
		logger.Error().Msgf(
			"No @component struct found in package %s, make sure the struct doc carries the annotation and the struct has a `component *extend.Component` field",
			targetPackage,
		)
		os.Exit(1)
	}

	logger.Info().Msgf("👨‍🔧 Component found: %s", definition.StructName)
	logger.Info().Msgf("🎯 %d extendable operations found", len(definition.Operations))
	logger.Debug().Msgf(
		"Operations:\n%s",
		strings.Join(slices.Map(definition.Operations, OperationDefinition.String), "\n"),
	)
	logger.Info().Msgf("🕵️‍♂️ Scanning completed in %s", time.Since(startScan))

	outputPath := filepath.Join(
		filepath.Dir(targetFilePath),
		strings.TrimSuffix(filepath.Base(targetFilePath), ".go")+"_gen.go",
	)
	if dryRun {
		outputPath = filepath.Join(os.TempDir(), filepath.Base(outputPath))
	}

	code, err := render(definition)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to render the generated code")
		os.Exit(1)
	}
	if err := os.WriteFile(outputPath, code, 0o644); err != nil {
		logger.Error().Err(err).Msgf("Failed to write %s", outputPath)
		os.Exit(1)
	}

	logger.Info().Msgf("✅ Code generated successfully in %s", outputPath)
}

func (o OperationDefinition) String() string {
	return fmt.Sprintf("✨ Operation %q (base method %s, wrapper %s)", o.Named, o.MethodName, o.WrapperName)
}
