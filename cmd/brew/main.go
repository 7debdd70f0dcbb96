// brew narrates the extension protocol on the coffee example: it brews cups
// with various condiments attached and logs every step of the dispatch.
//
// Configuration comes from the environment:
//
//	BREW_SCENARIO  scenario to run (plain, milk, milk-sugar, full, rush, all)
//	BREW_CUPS      number of cups brewed concurrently by the rush scenario
//	BREW_DEBUG     narrate the middleware wrapping as well
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/a-peyrard/extend"
	"github.com/a-peyrard/extend/coffee"
	"github.com/a-peyrard/extend/config"
	"github.com/a-peyrard/extend/option"
	"github.com/a-peyrard/extend/runner"
	"github.com/a-peyrard/extend/slices"
)

type (
	Config struct {
		Scenario string
		Cups     int
		Debug    bool
	}

	condiment func(*coffee.Coffee) (*extend.Extension, error)

	scenario struct {
		name       string
		condiments []condiment
		logger     zerolog.Logger
		options    []option.Option[extend.ComponentOptions]
	}

	rush struct {
		cups    int
		logger  zerolog.Logger
		options []option.Option[extend.ComponentOptions]
	}
)

func (c *Config) ApplyDefault() {
	if c.Scenario == "" {
		c.Scenario = "all"
	}
	if c.Cups == 0 {
		c.Cups = 3
	}
}

func (s *scenario) Run(_ context.Context) error {
	logger := s.logger.With().Str("scenario", s.name).Logger()
	logger.Info().Msg("☕ brewing")

	cup, err := brewCup(logger, s.condiments, s.options)
	if err != nil {
		return fmt.Errorf("scenario %s failed:\n\t%w", s.name, err)
	}

	logger.Info().
		Str("description", cup.Description()).
		Float64("cost", cup.Cost()).
		Msg("cup done")
	return nil
}

// Run brews all the cups concurrently, one goroutine per cup; every cup owns
// its component, so the single caller discipline of the protocol holds.
func (r *rush) Run(ctx context.Context) error {
	cups := make([]runner.Runnable, r.cups)
	for i := range cups {
		logger := r.logger.With().Int("cup", i+1).Logger()
		cups[i] = &scenario{
			name:       fmt.Sprintf("rush-%d", i+1),
			condiments: []condiment{coffee.WithMilk, coffee.WithSugar},
			logger:     logger,
			options:    r.options,
		}
	}
	return runner.RunAll(ctx, cups...)
}

func brewCup(
	logger zerolog.Logger,
	condiments []condiment,
	options []option.Option[extend.ComponentOptions],
) (*coffee.Coffee, error) {
	cup, err := coffee.New(logger, options...)
	if err != nil {
		return nil, err
	}
	for _, attach := range condiments {
		if _, err := attach(cup); err != nil {
			return nil, err
		}
	}

	if err := cup.Prepare(); err != nil {
		return nil, err
	}
	if err := cup.Serve(); err != nil {
		return nil, err
	}
	if err := cup.Cleanup(); err != nil {
		return nil, err
	}
	return cup, nil
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}).
		With().
		Timestamp().
		Logger()

	conf, err := config.Load[Config](config.WithEnvPrefix("BREW"))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load configuration")
		os.Exit(1)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	var options []option.Option[extend.ComponentOptions]
	if conf.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		options = append(options,
			extend.WithMiddleware(extend.Logged(logger), extend.Timed(logger)),
		)
	}

	all := []runner.Runnable{
		&scenario{name: "plain", logger: logger, options: options},
		&scenario{name: "milk", condiments: []condiment{coffee.WithMilk}, logger: logger, options: options},
		&scenario{
			name:       "milk-sugar",
			condiments: []condiment{coffee.WithMilk, coffee.WithSugar},
			logger:     logger,
			options:    options,
		},
		&scenario{
			name:       "full",
			condiments: []condiment{coffee.WithMilk, coffee.WithSugar, coffee.WithLogging},
			logger:     logger,
			options:    options,
		},
		&rush{cups: conf.Cups, logger: logger, options: options},
	}

	toRun := all
	if conf.Scenario != "all" {
		toRun = slices.Filter(all, func(r runner.Runnable) bool {
			s, ok := r.(*scenario)
			if !ok {
				return conf.Scenario == "rush"
			}
			return s.name == conf.Scenario
		})
		if len(toRun) == 0 {
			logger.Error().Msgf("unknown scenario %q", conf.Scenario)
			os.Exit(1)
		}
	}

	if err := runner.RunSequential(context.Background(), toRun...); err != nil {
		logger.Error().Err(err).Msg("brewing failed")
		os.Exit(1)
	}
}
