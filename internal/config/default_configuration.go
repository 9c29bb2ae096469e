package config

import (
	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"

	"github.com/dadrus/bestmatch/internal/x/patterntree"
)

const (
	defaultCacheMaxEntries = 1024
	defaultCacheMaxMemory  = 1 * bytesize.MB
)

func defaultConfig() Configuration {
	return Configuration{
		Log: LoggingConfig{
			Format: LogTextFormat,
			Level:  zerolog.ErrorLevel,
		},
		Matcher: MatcherConfig{
			Wildcard:         patterntree.DefaultWildcard,
			PatternSeparator: patterntree.DefaultPatternSeparator,
			PathSeparator:    patterntree.DefaultPathSeparator,
		},
		Cache: CacheConfig{
			MaxEntries: defaultCacheMaxEntries,
			MaxMemory:  defaultCacheMaxMemory,
		},
		Output: OutputConfig{
			Format: OutputTextFormat,
		},
	}
}
