// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/dadrus/bestmatch/internal/bestmatch"
	"github.com/dadrus/bestmatch/internal/config/parser"
	"github.com/dadrus/bestmatch/internal/validation"
	"github.com/dadrus/bestmatch/internal/x/errorchain"
)

const (
	defaultConfigFileName = "bestmatch.yaml"
	defaultEnvPrefix      = "BESTMATCH_"
)

type (
	EnvVarPrefix      string
	ConfigurationPath string
)

type Configuration struct { //nolint:musttag
	Log     LoggingConfig `koanf:"log"`
	Matcher MatcherConfig `koanf:"matcher"`
	Cache   CacheConfig   `koanf:"cache"`
	Output  OutputConfig  `koanf:"output"`
}

// NewConfiguration loads the configuration from the defaults, the given (or
// discovered) yaml file, the environment and the overrides, in that order,
// and validates it. Overrides are keyed by dotted paths like "output.format".
func NewConfiguration(
	envPrefix EnvVarPrefix, configFile ConfigurationPath, overrides map[string]any,
) (*Configuration, error) {
	result := defaultConfig()

	prefix := string(envPrefix)
	if len(prefix) == 0 {
		prefix = defaultEnvPrefix
	}

	opts := []parser.Option{
		parser.WithDecodeHookFunc(mapstructure.StringToTimeDurationHookFunc()),
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithDecodeHookFunc(byteSizeDecodeHookFunc),
		parser.WithConfigFile(string(configFile)),
		parser.WithDefaultConfigFilename(defaultConfigFileName),
		parser.WithConfigLookupDir("."),
		parser.WithConfigLookupDir("/etc/bestmatch"),
		parser.WithEnvPrefix(prefix),
		parser.WithConfigValidator(ValidateConfigSchema),
	}

	for key, value := range overrides {
		opts = append(opts, parser.WithOverride(key, value))
	}

	if err := parser.New(opts...).Load(&result); err != nil {
		return nil, errorchain.NewWithMessage(bestmatch.ErrConfiguration,
			"failed loading configuration").CausedBy(err)
	}

	if err := validation.ValidateStruct(result); err != nil {
		return nil, errorchain.NewWithMessage(bestmatch.ErrConfiguration,
			"invalid configuration").CausedBy(err)
	}

	return &result, nil
}
