package config

type MatcherConfig struct {
	Wildcard         string `koanf:"wildcard"          validate:"required"`
	PatternSeparator string `koanf:"pattern_separator" validate:"single_char"`
	PathSeparator    string `koanf:"path_separator"    validate:"single_char"`
}
