package extend

import (
	"time"

	"github.com/rs/zerolog"
)

// Logged returns a middleware narrating the start and the end of every base
// invocation.
func Logged(logger zerolog.Logger) Middleware {
	return func(op Op, next BaseFunc) BaseFunc {
		return func(args ...any) (any, error) {
			logger.Debug().Str("operation", string(op)).Msg("calling base implementation")
			result, err := next(args...)
			if err != nil {
				logger.Debug().Str("operation", string(op)).Err(err).Msg("base implementation failed")
			} else {
				logger.Debug().Str("operation", string(op)).Msg("base implementation finished")
			}
			return result, err
		}
	}
}

// Timed returns a middleware logging the time spent in every base invocation.
func Timed(logger zerolog.Logger) Middleware {
	return func(op Op, next BaseFunc) BaseFunc {
		return func(args ...any) (any, error) {
			start := time.Now()
			result, err := next(args...)
			logger.Debug().
				Str("operation", string(op)).
				Dur("elapsed", time.Since(start)).
				Msg("base implementation timed")
			return result, err
		}
	}
}
