package cache

import (
	"context"
)

type ctxKey struct{}

func WithContext(ctx context.Context, cch Cache) context.Context {
	if known, ok := ctx.Value(ctxKey{}).(Cache); ok {
		if known == cch {
			// Do not store same cache.
			return ctx
		}
	}

	return context.WithValue(ctx, ctxKey{}, cch)
}

// Ctx returns the cache stored in the context. If there is none, a cache
// which neither stores nor returns anything is returned.
func Ctx(ctx context.Context) Cache {
	if c, ok := ctx.Value(ctxKey{}).(Cache); ok {
		return c
	}

	return noopCache{}
}
