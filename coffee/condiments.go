package coffee

import "github.com/a-peyrard/extend"

// WithMilk attaches the milk condiment: it steams milk while preparing and
// tops the cup with foam when serving.
func WithMilk(c *Coffee) (*extend.Extension, error) {
	return extend.NewExtension(c.component, "milk",
		extend.WithHandler(OpPrepare, func(_ ...any) error {
			c.logger.Info().Msg("adding steamed milk")
			c.cost += 0.5
			c.description += " with milk"
			return nil
		}),
		extend.WithHandler(OpServe, func(_ ...any) error {
			c.logger.Info().Msg("topping with milk foam")
			return nil
		}),
	)
}

// WithSugar attaches the sugar condiment, reacting to the preparation only.
func WithSugar(c *Coffee) (*extend.Extension, error) {
	return extend.NewExtension(c.component, "sugar",
		extend.WithHandler(OpPrepare, func(_ ...any) error {
			c.logger.Info().Msg("adding sugar")
			c.cost += 0.3
			c.description += " and sugar"
			return nil
		}),
	)
}

// WithLogging attaches a condiment reacting to every step, to narrate the
// completion of each one.
func WithLogging(c *Coffee) (*extend.Extension, error) {
	step := func(name string) extend.Handler {
		return func(_ ...any) error {
			c.logger.Info().Str("step", name).Msg("step completed")
			return nil
		}
	}
	return extend.NewExtension(c.component, "logging",
		extend.WithHandler(OpPrepare, step("prepare")),
		extend.WithHandler(OpServe, step("serve")),
		extend.WithHandler(OpCleanup, step("cleanup")),
	)
}
