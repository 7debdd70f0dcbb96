package coffee

import (
	"github.com/a-peyrard/extend"
)

// Coffee brews a single cup.
//
// @component named="coffee"
type Coffee struct {
	component *extend.Component

	cost float64
}

// @extendable named="prepare"
func (c *Coffee) prepare() error {
	return nil
}

// @extendable named="serve"
func (c *Coffee) serve() error {
	return nil
}

// @extendable named="cleanup"
func (c *Coffee) cleanup() error {
	return nil
}
