package matcher

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/bestmatch/internal/cache"
	"github.com/dadrus/bestmatch/internal/cache/memory"
	"github.com/dadrus/bestmatch/internal/cache/mocks"
	"github.com/dadrus/bestmatch/internal/config"
	"github.com/dadrus/bestmatch/internal/x/patterntree"
)

var errTestCache = errors.New("test cache error")

func TestCachingMatcherWithoutCache(t *testing.T) {
	t.Parallel()

	// GIVEN
	cm := NewCachingMatcher(New(patterntree.Build([]string{"a,*"})), 0)

	// WHEN
	result1 := cm.BestMatch(t.Context(), "a/b")
	result2 := cm.BestMatch(t.Context(), "b/a")

	// THEN
	assert.Equal(t, "a,*", result1)
	assert.Equal(t, NoMatch, result2)
}

func TestCachingMatcherStoresResults(t *testing.T) {
	t.Parallel()

	// GIVEN
	cch := memory.NewCache(config.CacheConfig{})
	require.NoError(t, cch.Start(t.Context()))
	t.Cleanup(func() { _ = cch.Stop(t.Context()) })

	ctx := cache.WithContext(t.Context(), cch)
	cm := NewCachingMatcher(New(patterntree.Build([]string{"a,*", "*,b"})), time.Minute)

	// WHEN
	result1 := cm.BestMatch(ctx, "/a/b/")
	result2 := cm.BestMatch(ctx, "c/d")

	// THEN
	assert.Equal(t, "a,*", result1)
	assert.Equal(t, NoMatch, result2)

	value, err := cch.Get(ctx, "best-match:/a/b/")
	require.NoError(t, err)
	assert.Equal(t, "a,*", string(value))

	value, err = cch.Get(ctx, "best-match:c/d")
	require.NoError(t, err)
	assert.Equal(t, NoMatch, string(value))
}

func TestCachingMatcherUsesCachedResults(t *testing.T) {
	t.Parallel()

	// GIVEN
	cch := memory.NewCache(config.CacheConfig{})
	require.NoError(t, cch.Start(t.Context()))
	t.Cleanup(func() { _ = cch.Stop(t.Context()) })

	ctx := cache.WithContext(t.Context(), cch)
	require.NoError(t, cch.Set(ctx, "best-match:a/b", []byte("x,y"), 0))

	cm := NewCachingMatcher(New(patterntree.Build([]string{"a,b"})), 0)

	// WHEN
	result := cm.BestMatch(ctx, "a/b")

	// THEN
	assert.Equal(t, "x,y", result)
}

func TestCachingMatcherToleratesCacheErrors(t *testing.T) {
	t.Parallel()

	// GIVEN
	cch := &mocks.CacheMock{}
	cch.On("Get", mock.Anything, "best-match:a/b").Return(nil, errTestCache)
	cch.On("Set", mock.Anything, "best-match:a/b", []byte("a,b"), 10*time.Second).Return(errTestCache)

	ctx := cache.WithContext(t.Context(), cch)
	cm := NewCachingMatcher(New(patterntree.Build([]string{"a,b"})), 10*time.Second)

	// WHEN
	result := cm.BestMatch(ctx, "a/b")

	// THEN
	assert.Equal(t, "a,b", result)
	cch.AssertExpectations(t)
}

func TestCachingMatcherSkipsMatchingOnCacheHit(t *testing.T) {
	t.Parallel()

	// GIVEN
	cch := &mocks.CacheMock{}
	cch.On("Get", mock.Anything, "best-match:/a/b/").Return([]byte("a,*"), nil)

	ctx := cache.WithContext(t.Context(), cch)
	cm := NewCachingMatcher(New(patterntree.Build([]string{"a,b"})), 0)

	// WHEN
	result := cm.BestMatch(ctx, "/a/b/")

	// THEN
	assert.Equal(t, "a,*", result)
	cch.AssertExpectations(t)
	cch.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
