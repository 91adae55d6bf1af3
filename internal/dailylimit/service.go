// Package dailylimit enforces the per-identity daily win-recording cap by
// counting records already persisted to the external store.
//
// The check is not transactionally atomic with the create that follows it:
// two concurrent requests sharing an identity key can both pass the check
// before either writes. That race is an accepted property of the design, not
// something this package tries to hide.
package dailylimit

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/fortuna-games/fortuna/internal/domain"
	"github.com/fortuna-games/fortuna/internal/logger"
	"github.com/fortuna-games/fortuna/internal/repository"
)

// Service checks whether an identity key has exhausted its daily quota
type Service interface {
	// HasReachedLimit reports whether identityKey already has at least the
	// configured number of records for game in today's UTC window.
	HasReachedLimit(ctx context.Context, identityKey string, game domain.Game) (bool, error)
}

type service struct {
	records repository.Records
	limits  map[domain.Game]int

	// reached memoizes positive verdicts only. Once an identity hits the cap
	// the verdict holds for the rest of the UTC day unless records are
	// deleted out of band; the TTL bounds that staleness.
	reached *expirable.LRU[string, bool]

	now func() time.Time // Injectable for testing
}

// NewService creates a daily limit service backed by the record store.
func NewService(records repository.Records, limits map[domain.Game]int) Service {
	return &service{
		records: records,
		limits:  limits,
		reached: expirable.NewLRU[string, bool](ReachedCacheSize, nil, ReachedCacheTTL),
		now:     time.Now,
	}
}

func (s *service) HasReachedLimit(ctx context.Context, identityKey string, game domain.Game) (bool, error) {
	limit, ok := s.limits[game]
	if !ok {
		limit = DefaultDailyLimit
	}

	dayStart, dayEnd := dayWindow(s.now())
	cacheKey := fmt.Sprintf("%s|%s|%s", game, identityKey, dayStart.Format(dayKeyFormat))

	if _, hit := s.reached.Get(cacheKey); hit {
		return true, nil
	}

	records, err := s.records.List(ctx, game)
	if err != nil {
		return false, fmt.Errorf("failed to count today's records: %w", err)
	}

	count := 0
	for _, rec := range records {
		if rec.Key != identityKey {
			continue
		}
		ts := rec.Timestamp.UTC()
		if ts.Before(dayStart) || ts.After(dayEnd) {
			continue
		}
		count++
	}

	if count >= limit {
		s.reached.Add(cacheKey, true)
		logger.FromContext(ctx).Info("Daily limit reached",
			"game", game, "identity_key", identityKey, "count", count, "limit", limit)
		return true, nil
	}
	return false, nil
}

// dayWindow returns the inclusive [00:00:00, 23:59:59] UTC bounds of the day
// containing t.
func dayWindow(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Second)
	return start, end
}
