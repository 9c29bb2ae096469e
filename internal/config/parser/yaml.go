package parser

import (
	"os"

	"github.com/drone/envsubst/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/dadrus/bestmatch/internal/bestmatch"
	"github.com/dadrus/bestmatch/internal/x/errorchain"
	"github.com/dadrus/bestmatch/internal/x/stringx"
)

func readConfigFile(configFile string) ([]byte, error) {
	raw, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errorchain.NewWithMessagef(bestmatch.ErrConfiguration,
			"failed to read config file %s", configFile).CausedBy(err)
	}

	content, err := envsubst.EvalEnv(stringx.ToString(raw))
	if err != nil {
		return nil, errorchain.NewWithMessage(bestmatch.ErrConfiguration,
			"substitution of environment variables failed").CausedBy(err)
	}

	return stringx.ToBytes(content), nil
}

func koanfFromYaml(content []byte) (*koanf.Koanf, error) {
	parser := koanf.New(".")

	if err := parser.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return nil, errorchain.NewWithMessage(bestmatch.ErrConfiguration,
			"failed to load yaml config").CausedBy(err)
	}

	return parser, nil
}
