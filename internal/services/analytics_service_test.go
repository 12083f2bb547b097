package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"campusride/internal/models"
	"campusride/internal/utils"
	"campusride/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("should mark figures as mock and stay within range", func(t *testing.T) {
		req := require.New(t)
		svc := NewAnalyticsService(rand.New(rand.NewSource(1)))

		summary, err := svc.Summary(ctx, "dave", models.RoleDriver)

		req.NoError(err)
		req.True(summary.Mock)
		req.Equal("dave", summary.User)
		req.GreaterOrEqual(summary.Earnings, 200.0)
		req.LessOrEqual(summary.Earnings, 300.0)
		req.Len(summary.WeeklyEarnings, 7)
		req.Zero(summary.Spending)
		req.GreaterOrEqual(summary.RidesThisWeek, 8)
		req.LessOrEqual(summary.GoalProgress, 0.75)
	})

	t.Run("should report spending for riders", func(t *testing.T) {
		req := require.New(t)
		svc := NewAnalyticsService(rand.New(rand.NewSource(2)))

		summary, err := svc.Summary(ctx, "erin", models.RoleRider)

		req.NoError(err)
		req.Zero(summary.Earnings)
		req.GreaterOrEqual(summary.Spending, 50.0)
		req.Len(summary.WeeklySpending, 7)
	})

	t.Run("should be reproducible for a seeded source", func(t *testing.T) {
		req := require.New(t)
		a, err := NewAnalyticsService(rand.New(rand.NewSource(7))).Summary(ctx, "dave", models.RoleDriver)
		req.NoError(err)
		b, err := NewAnalyticsService(rand.New(rand.NewSource(7))).Summary(ctx, "dave", models.RoleDriver)
		req.NoError(err)

		req.Equal(a, b)
	})

	t.Run("should require a user", func(t *testing.T) {
		req := require.New(t)

		_, err := NewAnalyticsService(nil).Summary(ctx, "", models.RoleRider)

		req.ErrorIs(err, utils.ErrValidation)
	})
}

type mapSummaryCache struct {
	entries map[string]models.MockSummary
	setErr  error
	sets    int
}

func (c *mapSummaryCache) Get(ctx context.Context, key string, dest interface{}) error {
	s, ok := c.entries[key]
	if !ok {
		return redis.Nil
	}
	*dest.(*models.MockSummary) = s
	return nil
}

func (c *mapSummaryCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = *value.(*models.MockSummary)
	return nil
}

func TestCachedAnalyticsService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("should serve the cached summary on repeat requests", func(t *testing.T) {
		req := require.New(t)
		store := &mapSummaryCache{entries: map[string]models.MockSummary{}}
		svc := NewCachedAnalyticsService(NewAnalyticsService(rand.New(rand.NewSource(3))), store, time.Minute, logger.NewNopLogger())

		first, err := svc.Summary(ctx, "dave", models.RoleDriver)
		req.NoError(err)
		second, err := svc.Summary(ctx, "dave", models.RoleDriver)
		req.NoError(err)

		req.Equal(first, second)
		req.Equal(1, store.sets)
		req.Contains(store.entries, "dashboard:driver:dave")
	})

	t.Run("should still answer when the cache cannot be written", func(t *testing.T) {
		req := require.New(t)
		store := &mapSummaryCache{entries: map[string]models.MockSummary{}, setErr: errors.New("connection refused")}
		svc := NewCachedAnalyticsService(NewAnalyticsService(nil), store, time.Minute, logger.NewNopLogger())

		summary, err := svc.Summary(ctx, "erin", models.RoleRider)

		req.NoError(err)
		req.True(summary.Mock)
	})
}
