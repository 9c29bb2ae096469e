package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Start(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *CacheMock) Stop(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *CacheMock) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)

	if val := args.Get(0); val != nil {
		return val.([]byte), args.Error(1) //nolint:forcetypeassert
	}

	return nil, args.Error(1)
}

func (m *CacheMock) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}
