package flights

import (
	"context"
	"errors"
	"testing"
	"time"

	"aerobook/internal/shared/constants"
	"aerobook/pkg/logger"

	"github.com/stretchr/testify/mock"
)

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) Get(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

func (m *MockCacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheService) DeletePattern(ctx context.Context, pattern string) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

func (m *MockCacheService) Exists(ctx context.Context, key string) bool {
	args := m.Called(ctx, key)
	return args.Bool(0)
}

func (m *MockCacheService) MGet(ctx context.Context, keys []string, dest interface{}) error {
	args := m.Called(ctx, keys, dest)
	return args.Error(0)
}

func (m *MockCacheService) MSet(ctx context.Context, items map[string]interface{}, ttl time.Duration) error {
	args := m.Called(ctx, items, ttl)
	return args.Error(0)
}

func (m *MockCacheService) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	args := m.Called(ctx, key, ttl, fetcher, dest)
	return args.Error(0)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestRepository_SeatChangeInvalidatesFlightCaches(t *testing.T) {
	mockCache := &MockCacheService{}
	repo := &repository{cache: mockCache, log: logger.GetDefault()}
	ctx := context.Background()

	mockCache.On("DeletePattern", ctx, constants.PATTERN_INVALIDATE_FLIGHT_ALL).Return(nil).Once()

	repo.invalidateFlightCaches(ctx)

	mockCache.AssertExpectations(t)
}

func TestRepository_SeatChangeToleratesCacheFailure(t *testing.T) {
	mockCache := &MockCacheService{}
	repo := &repository{cache: mockCache, log: logger.GetDefault()}
	ctx := context.Background()

	mockCache.On("DeletePattern", ctx, constants.PATTERN_INVALIDATE_FLIGHT_ALL).
		Return(errors.New("redis down")).Once()

	// Invalidation is best-effort; a cache failure must not panic or
	// surface to the seat mutation.
	repo.invalidateFlightCaches(ctx)

	mockCache.AssertExpectations(t)
}

func TestRepository_SeatChangeSkipsInvalidationWithoutCache(t *testing.T) {
	repo := &repository{log: logger.GetDefault()}

	repo.invalidateFlightCaches(context.Background())
}
