// Package coffee is a worked example of the extension protocol: a Coffee
// component declares prepare, serve and cleanup as extendable operations, and
// condiments attach as extensions reacting after each step.
package coffee

import (
	"fmt"

	"github.com/a-peyrard/extend"
	"github.com/a-peyrard/extend/option"
	"github.com/rs/zerolog"
)

//go:generate go run github.com/a-peyrard/extend/cmd/extendgen

// Coffee brews a single cup. Its cost and description accumulate whatever the
// attached condiments decide to add.
//
// @component named="coffee"
type Coffee struct {
	component *extend.Component
	logger    zerolog.Logger

	cost        float64
	description string
}

// New builds a plain coffee. Component options (middlewares, fault policy, ...)
// are forwarded to the underlying component declaration.
func New(logger zerolog.Logger, opts ...option.Option[extend.ComponentOptions]) (*Coffee, error) {
	c := &Coffee{
		logger:      logger,
		cost:        2.0,
		description: "simple coffee",
	}

	component, err := newCoffeeComponent(c, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to declare coffee operations:\n\t%w", err)
	}
	c.component = component

	return c, nil
}

// prepare brews the grounds.
//
// @extendable named="prepare"
func (c *Coffee) prepare() error {
	c.logger.Info().Msgf("preparing %s", c.description)
	return nil
}

// @extendable named="serve"
func (c *Coffee) serve() error {
	c.logger.Info().Msgf("serving %s ($%.2f)", c.description, c.cost)
	return nil
}

// @extendable named="cleanup"
func (c *Coffee) cleanup() error {
	c.logger.Info().Msg("cleaning up coffee machine")
	return nil
}

// Cost returns the accumulated cost of the cup.
func (c *Coffee) Cost() float64 {
	return c.cost
}

// Description returns the accumulated description of the cup.
func (c *Coffee) Description() string {
	return c.description
}

// Component exposes the underlying component, so callers can attach their own
// extensions or inspect the dispatch state.
func (c *Coffee) Component() *extend.Component {
	return c.component
}
