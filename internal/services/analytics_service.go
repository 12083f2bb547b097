package services

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"campusride/internal/models"
	"campusride/internal/utils"
	"campusride/internal/validators"
	"campusride/pkg/cache"
	"campusride/pkg/logger"
)

// AnalyticsService produces placeholder dashboard figures. Nothing here reads
// or writes ride or chat state, and every value is random.
type AnalyticsService interface {
	Earnings(ctx context.Context, user string) (float64, []float64)
	Savings(ctx context.Context, user string) (savings float64, co2SavedKg float64)
	Progress(ctx context.Context, user string) (ridesThisWeek int, goalProgress float64)
	Summary(ctx context.Context, user string, role models.UserRole) (*models.MockSummary, error)
}

type analyticsService struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewAnalyticsService(rnd *rand.Rand) AnalyticsService {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &analyticsService{rnd: rnd}
}

// between returns an integer in [lo, hi].
func (s *analyticsService) between(lo, hi int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rnd.Intn(hi-lo+1)
}

func (s *analyticsService) week(lo, hi int) []float64 {
	days := make([]float64, 7)
	for i := range days {
		days[i] = float64(s.between(lo, hi))
	}
	return days
}

func (s *analyticsService) Earnings(ctx context.Context, user string) (float64, []float64) {
	return float64(s.between(200, 300)), s.week(20, 60)
}

func (s *analyticsService) Savings(ctx context.Context, user string) (float64, float64) {
	savings := float64(s.between(20, 70))
	return savings, float64(s.between(4, 12)) * savings / 10
}

func (s *analyticsService) Progress(ctx context.Context, user string) (int, float64) {
	rides := s.between(8, 15)
	return rides, float64(s.between(10, 75)) / 100
}

func (s *analyticsService) Summary(ctx context.Context, user string, role models.UserRole) (*models.MockSummary, error) {
	if err := validators.ValidateIdentity("user", user).AsAppError("dashboard"); err != nil {
		return nil, err
	}

	summary := &models.MockSummary{
		User:     strings.TrimSpace(user),
		Mock:     true,
		Currency: utils.DefaultCurrency,
	}
	summary.Savings, summary.CO2SavedKg = s.Savings(ctx, user)
	summary.RidesThisWeek, summary.GoalProgress = s.Progress(ctx, user)

	if role == models.RoleDriver {
		summary.Earnings, summary.WeeklyEarnings = s.Earnings(ctx, user)
	} else {
		summary.Spending = float64(s.between(50, 100))
		summary.WeeklySpending = s.week(5, 25)
	}
	return summary, nil
}

// SummaryCache stores dashboard summaries between requests. *cache.RedisCache
// satisfies it.
type SummaryCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// cachedAnalyticsService keeps a user's figures stable for ttl so a page
// refresh does not reroll the dashboard.
type cachedAnalyticsService struct {
	AnalyticsService
	cache  SummaryCache
	ttl    time.Duration
	logger *logger.Logger
}

func NewCachedAnalyticsService(inner AnalyticsService, summaries SummaryCache, ttl time.Duration, log *logger.Logger) AnalyticsService {
	return &cachedAnalyticsService{
		AnalyticsService: inner,
		cache:            summaries,
		ttl:              ttl,
		logger:           log,
	}
}

func summaryKey(user string, role models.UserRole) string {
	return "dashboard:" + string(role) + ":" + strings.TrimSpace(user)
}

func (s *cachedAnalyticsService) Summary(ctx context.Context, user string, role models.UserRole) (*models.MockSummary, error) {
	key := summaryKey(user, role)

	var cached models.MockSummary
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if !cache.IsMiss(err) {
		s.logger.WithError(err).WithField("key", key).Warn("Dashboard cache read failed")
	}

	summary, err := s.AnalyticsService.Summary(ctx, user, role)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, summary, s.ttl); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Dashboard cache write failed")
	}
	return summary, nil
}
