package config

const (
	OutputTextFormat = "text"
	OutputJSONFormat = "json"
	OutputYAMLFormat = "yaml"
)

type OutputConfig struct {
	Format string `koanf:"format" validate:"required,oneof=text json yaml"`
}
