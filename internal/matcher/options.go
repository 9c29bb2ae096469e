package matcher

import "github.com/rs/zerolog"

type Option func(m *Matcher)

func WithLogger(logger zerolog.Logger) Option {
	return func(m *Matcher) {
		m.logger = logger
	}
}
