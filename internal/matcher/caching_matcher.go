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

package matcher

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dadrus/bestmatch/internal/cache"
	"github.com/dadrus/bestmatch/internal/x/stringx"
)

// CachingMatcher memoizes the results of a Matcher in the cache available
// from the context. Without a cache in the context, every call is delegated.
type CachingMatcher struct {
	m   *Matcher
	ttl time.Duration
}

func NewCachingMatcher(m *Matcher, ttl time.Duration) *CachingMatcher {
	return &CachingMatcher{m: m, ttl: ttl}
}

func (c *CachingMatcher) BestMatch(ctx context.Context, path string) string {
	cch := cache.Ctx(ctx)
	key := c.cacheKey(path)

	if value, err := cch.Get(ctx, key); err == nil {
		zerolog.Ctx(ctx).Debug().Str("_path", path).Msg("Reusing best match from cache")

		return stringx.ToString(value)
	}

	pattern := c.m.BestMatch(path)

	if err := cch.Set(ctx, key, []byte(pattern), c.ttl); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Msg("Failed to store value in cache")
	}

	return pattern
}

func (c *CachingMatcher) cacheKey(path string) string { return "best-match:" + path }
