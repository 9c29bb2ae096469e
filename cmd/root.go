// Copyright 2022 Dimitrij Drus <dadrus@gmx.de>
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
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/dadrus/bestmatch/cmd/flags"
	"github.com/dadrus/bestmatch/cmd/validate"
	"github.com/dadrus/bestmatch/internal/config"
	"github.com/dadrus/bestmatch/internal/x/errorchain"
)

// Version is set at build time via ldflags.
var Version = "master" //nolint:gochecknoglobals

// RootCmd represents the base command when called without any subcommands.
var RootCmd = NewRootCommand() //nolint:gochecknoglobals

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "bestmatch",
		Short:         "Finds the most specific wildcard pattern for each given path",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags.RegisterGlobalFlags(root)

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Commands for validating bestmatch's configuration",
	}
	validateCmd.AddCommand(validate.NewValidateConfigCommand())

	root.AddCommand(NewMatchCommand())
	root.AddCommand(validateCmd)

	return root
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cmd, err := RootCmd.ExecuteC()
	if err != nil {
		printError(cmd, err)
		os.Exit(1)
	}
}

// printError writes the error as a JSON document if json output was requested.
func printError(cmd *cobra.Command, err error) {
	var chain *errorchain.ErrorChain

	format, _ := cmd.Flags().GetString(flags.Output)
	if format == config.OutputJSONFormat && errors.As(err, &chain) {
		if raw, jerr := chain.MarshalJSON(); jerr == nil {
			cmd.PrintErrln(string(raw))

			return
		}
	}

	cmd.PrintErrln(err)
}
