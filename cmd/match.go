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

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/DmitriyVTitov/size"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dadrus/bestmatch/cmd/flags"
	"github.com/dadrus/bestmatch/internal/bestmatch"
	"github.com/dadrus/bestmatch/internal/cache"
	"github.com/dadrus/bestmatch/internal/cache/memory"
	"github.com/dadrus/bestmatch/internal/config"
	"github.com/dadrus/bestmatch/internal/encoding"
	"github.com/dadrus/bestmatch/internal/input"
	"github.com/dadrus/bestmatch/internal/logging"
	"github.com/dadrus/bestmatch/internal/matcher"
	"github.com/dadrus/bestmatch/internal/x/errorchain"
	"github.com/dadrus/bestmatch/internal/x/patterntree"
)

// NewMatchCommand represents the "match" command.
func NewMatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match [file]",
		Short: "Prints the best matching pattern for every path of the given input",
		Long: "Reads the pattern count, the patterns, the path count and the paths, one per line,\n" +
			"from the given file or stdin and prints the best matching pattern for each path.",
		Example: "bestmatch match input.txt\ncat input.txt | bestmatch match -o json",
		Args:    cobra.MaximumNArgs(1),
		RunE:    runMatch,
	}

	cmd.Flags().StringP(flags.Output, "o", "",
		"Output format to use (text, json or yaml).\nOverrides the configured output format")

	return cmd
}

func runMatch(cmd *cobra.Command, args []string) error {
	envPrefix, configPath := flags.ConfigSources(cmd)
	output, _ := cmd.Flags().GetString(flags.Output)

	overrides := map[string]any{}
	if len(output) != 0 {
		overrides["output.format"] = output
	}

	conf, err := config.NewConfiguration(
		config.EnvVarPrefix(envPrefix),
		config.ConfigurationPath(configPath),
		overrides,
	)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(conf.Log, cmd.ErrOrStderr())

	encoder, err := encoding.NewEncoder(conf.Output.Format)
	if err != nil {
		return err
	}

	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	tree := patterntree.Build(in.Patterns,
		patterntree.WithWildcard(conf.Matcher.Wildcard),
		patterntree.WithPatternSeparator(conf.Matcher.PatternSeparator),
		patterntree.WithPathSeparator(conf.Matcher.PathSeparator),
	)

	if event := logger.Debug(); event.Enabled() {
		event.
			Int("_patterns", len(in.Patterns)).
			Int("_nodes", tree.Size()).
			Int("_bytes", size.Of(tree)).
			Msg("Pattern tree built")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ctx = logger.WithContext(ctx)

	bestMatch, stop, err := newBestMatchFunc(ctx, conf.Cache, matcher.New(tree, matcher.WithLogger(logger)))
	if err != nil {
		return err
	}

	defer stop()

	results := make([]encoding.Result, 0, len(in.Paths))
	for _, path := range in.Paths {
		results = append(results, encoding.Result{Path: path, Best: bestMatch(path)})
	}

	return encoder.Encode(cmd.OutOrStdout(), results)
}

func readInput(cmd *cobra.Command, args []string) (input.Input, error) {
	var reader io.Reader = cmd.InOrStdin()

	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return input.Input{}, errorchain.NewWithMessagef(bestmatch.ErrArgument,
				"failed opening input file %s", args[0]).CausedBy(err)
		}

		defer file.Close()

		reader = file
	}

	return input.Parse(reader)
}

func newBestMatchFunc(
	ctx context.Context, conf config.CacheConfig, m *matcher.Matcher,
) (func(string) string, func(), error) {
	if !conf.Enabled {
		return m.BestMatch, func() {}, nil
	}

	cch := memory.NewCache(conf)
	if err := cch.Start(ctx); err != nil {
		return nil, nil, errorchain.NewWithMessage(bestmatch.ErrInternal,
			"failed starting result cache").CausedBy(err)
	}

	cm := matcher.NewCachingMatcher(m, conf.TTL)
	stop := func() {
		if err := cch.Stop(ctx); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("Failed stopping result cache")
		}
	}

	ctx = cache.WithContext(ctx, cch)

	return func(path string) string { return cm.BestMatch(ctx, path) }, stop, nil
}
