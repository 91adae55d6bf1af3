// Package wheel implements the prize wheel: weighted slot selection with a
// static winning-index policy, and best-effort persistence that never blocks
// or alters an already-computed outcome.
package wheel

import (
	"context"
	"fmt"
	"time"

	"github.com/fortuna-games/fortuna/internal/domain"
	"github.com/fortuna-games/fortuna/internal/logger"
	"github.com/fortuna-games/fortuna/internal/metrics"
	"github.com/fortuna-games/fortuna/internal/repository"
	"github.com/fortuna-games/fortuna/internal/utils"
)

// DailyLimitService defines the interface for daily limit checks
type DailyLimitService interface {
	HasReachedLimit(ctx context.Context, identityKey string, game domain.Game) (bool, error)
}

// Service defines the interface for wheel operations
type Service interface {
	// Play selects a slot and returns it. For winning slots a persistence
	// attempt follows, but its failure is logged and discarded; the returned
	// outcome is final the moment it is computed.
	Play(ctx context.Context, identityKey string) (*domain.WheelResult, error)
}

type service struct {
	records     repository.Records
	limiter     DailyLimitService
	slots       []domain.WheelSlot
	winning     map[int]bool
	totalWeight int

	rng func(int) int // Injectable for testing, uniform [0,n)
	now func() time.Time
}

// NewService creates a new wheel service. A weight table that cannot produce
// an outcome is rejected here, at startup.
func NewService(records repository.Records, limiter DailyLimitService, slots []domain.WheelSlot, winning map[int]bool) (Service, error) {
	total := 0
	for i, slot := range slots {
		if slot.Weight < 0 {
			return nil, fmt.Errorf("%w: slot %d has negative weight", domain.ErrBadWheelConfig, i)
		}
		total += slot.Weight
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: total weight must be positive", domain.ErrBadWheelConfig)
	}
	for idx := range winning {
		if idx < 0 || idx >= len(slots) {
			return nil, fmt.Errorf("%w: winning index %d out of range", domain.ErrBadWheelConfig, idx)
		}
	}

	return &service{
		records:     records,
		limiter:     limiter,
		slots:       slots,
		winning:     winning,
		totalWeight: total,
		rng:         func(n int) int { return utils.RandomInt(0, n-1) },
		now:         time.Now,
	}, nil
}

func (s *service) Play(ctx context.Context, identityKey string) (*domain.WheelResult, error) {
	// Guard against a service constructed without going through NewService.
	// Checked before any randomness is consumed.
	if s.totalWeight <= 0 {
		return nil, fmt.Errorf("%w: total weight must be positive", domain.ErrBadWheelConfig)
	}

	result := s.selectSlot()
	metrics.WheelSpinsTotal.WithLabelValues(resultLabel(result.IsWin)).Inc()

	// The response is final from here on. Persistence is an auditing side
	// effect, not a gate: its failure must never reach the caller.
	if result.IsWin {
		s.persistWin(ctx, identityKey, result)
	}

	return &result, nil
}

// selectSlot performs weighted random selection over the slot table. The
// first slot whose cumulative weight exceeds the roll wins the tie-break, so
// zero-weight slots can never be selected.
func (s *service) selectSlot() domain.WheelResult {
	roll := s.rng(s.totalWeight)

	cumulative := 0
	for i, slot := range s.slots {
		cumulative += slot.Weight
		if roll < cumulative {
			return domain.WheelResult{PrizeIndex: i, PrizeName: slot.Name, IsWin: s.winning[i]}
		}
	}

	// Fallback (should never happen)
	last := len(s.slots) - 1
	return domain.WheelResult{PrizeIndex: last, PrizeName: s.slots[last].Name, IsWin: s.winning[last]}
}

// persistWin records a winning outcome on a best-effort basis. Limit hits
// and store failures are logged and swallowed.
func (s *service) persistWin(ctx context.Context, identityKey string, result domain.WheelResult) {
	log := logger.FromContext(ctx)

	now := s.now().UTC()
	key := domain.ResolveIdentityKey(identityKey, now)

	reached, err := s.limiter.HasReachedLimit(ctx, key, domain.GameWheel)
	if err != nil {
		log.Warn("Failed to check wheel daily limit", "identity_key", key, "error", err)
		return
	}
	if reached {
		metrics.LimitRejectionsTotal.WithLabelValues(domain.GameWheel.String()).Inc()
		log.Info("Wheel win not recorded, daily limit reached", "identity_key", key)
		return
	}

	rec := domain.PrizeRecord{
		Key:       key,
		Timestamp: now,
		Number:    result.PrizeIndex,
		IsWin:     true,
		Game:      domain.GameWheel,
	}
	if err := s.records.Create(ctx, rec, domain.GameWheel); err != nil {
		metrics.PersistFailuresTotal.WithLabelValues(domain.GameWheel.String()).Inc()
		log.Warn("Failed to persist wheel win", "identity_key", key, "error", err)
		return
	}

	metrics.RecordsPersistedTotal.WithLabelValues(domain.GameWheel.String()).Inc()
	log.Info("Wheel win persisted", "identity_key", key, "prize_index", result.PrizeIndex)
}

func resultLabel(isWin bool) string {
	if isWin {
		return metrics.LabelValueWin
	}
	return metrics.LabelValueLose
}
