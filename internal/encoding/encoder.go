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

package encoding

import (
	"bufio"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/bestmatch/internal/bestmatch"
	"github.com/dadrus/bestmatch/internal/config"
	"github.com/dadrus/bestmatch/internal/x/errorchain"
)

// Result pairs a path with the best matching pattern, or the no-match sentinel.
type Result struct {
	Path string `json:"path" yaml:"path"`
	Best string `json:"best" yaml:"best"`
}

type Encoder interface {
	Encode(out io.Writer, results []Result) error
}

type EncoderFunc func(out io.Writer, results []Result) error

func (f EncoderFunc) Encode(out io.Writer, results []Result) error { return f(out, results) }

// NewEncoder returns the encoder for the given output format.
func NewEncoder(format string) (Encoder, error) {
	switch format {
	case config.OutputTextFormat:
		return EncoderFunc(encodeText), nil
	case config.OutputJSONFormat:
		return EncoderFunc(encodeJSON), nil
	case config.OutputYAMLFormat:
		return EncoderFunc(encodeYAML), nil
	default:
		return nil, errorchain.NewWithMessagef(bestmatch.ErrArgument,
			"unsupported output format: %s", format)
	}
}

func encodeText(out io.Writer, results []Result) error {
	writer := bufio.NewWriter(out)

	for _, result := range results {
		if _, err := writer.WriteString(result.Best + "\n"); err != nil {
			return errorchain.NewWithMessage(bestmatch.ErrInternal,
				"failed writing result").CausedBy(err)
		}
	}

	if err := writer.Flush(); err != nil {
		return errorchain.NewWithMessage(bestmatch.ErrInternal,
			"failed writing result").CausedBy(err)
	}

	return nil
}

func encodeJSON(out io.Writer, results []Result) error {
	if results == nil {
		results = []Result{}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	if err := enc.Encode(results); err != nil {
		return errorchain.NewWithMessage(bestmatch.ErrInternal,
			"failed encoding results to json").CausedBy(err)
	}

	return nil
}

func encodeYAML(out io.Writer, results []Result) error {
	if results == nil {
		results = []Result{}
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)

	if err := enc.Encode(results); err != nil {
		return errorchain.NewWithMessage(bestmatch.ErrInternal,
			"failed encoding results to yaml").CausedBy(err)
	}

	if err := enc.Close(); err != nil {
		return errorchain.NewWithMessage(bestmatch.ErrInternal,
			"failed encoding results to yaml").CausedBy(err)
	}

	return nil
}
