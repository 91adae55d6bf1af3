// Package spin implements the spin game: three random digits, a forced
// winning triple at the configured probability, and strict persistence of
// wins to the record store.
package spin

import (
	"context"
	"fmt"
	"strconv"
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

// Service defines the interface for spin operations
type Service interface {
	// Play produces a spin outcome. Winning outcomes are persisted before
	// they are returned: a reached limit or a store failure fails the whole
	// request and the outcome is withheld.
	Play(ctx context.Context, identityKey string) (*domain.SpinResult, error)
}

type service struct {
	records        repository.Records
	limiter        DailyLimitService
	winProbability float64

	randFloat func() float64 // Injectable for testing, uniform [0,1)
	randDigit func() int    // Injectable for testing, uniform 0..9
	now       func() time.Time
}

// NewService creates a new spin service
func NewService(records repository.Records, limiter DailyLimitService, winProbability float64) Service {
	return &service{
		records:        records,
		limiter:        limiter,
		winProbability: winProbability,
		randFloat:      utils.RandomFloat,
		randDigit:      func() int { return utils.RandomInt(0, 9) },
		now:            time.Now,
	}
}

func (s *service) Play(ctx context.Context, identityKey string) (*domain.SpinResult, error) {
	log := logger.FromContext(ctx)

	result := s.generate()
	metrics.SpinsTotal.WithLabelValues(resultLabel(result.IsWin)).Inc()

	if !result.IsWin {
		return &result, nil
	}

	now := s.now().UTC()
	key := domain.ResolveIdentityKey(identityKey, now)

	reached, err := s.limiter.HasReachedLimit(ctx, key, domain.GameSpin)
	if err != nil {
		return nil, fmt.Errorf("failed to check daily limit: %w", err)
	}
	if reached {
		metrics.LimitRejectionsTotal.WithLabelValues(domain.GameSpin.String()).Inc()
		return nil, fmt.Errorf("%w: identity key %s", domain.ErrLimitReached, key)
	}

	rec := domain.PrizeRecord{
		Key:       key,
		Timestamp: now,
		Number:    result.Number(),
		IsWin:     true,
		Game:      domain.GameSpin,
	}
	if err := s.records.Create(ctx, rec, domain.GameSpin); err != nil {
		metrics.PersistFailuresTotal.WithLabelValues(domain.GameSpin.String()).Inc()
		// Strict flow: the caller never sees an outcome that failed to persist.
		return nil, fmt.Errorf("failed to persist win: %w", err)
	}

	metrics.RecordsPersistedTotal.WithLabelValues(domain.GameSpin.String()).Inc()
	log.Info("Spin win persisted", "identity_key", key, "number", rec.Number)

	return &result, nil
}

// generate draws a spin outcome. A non-winning draw can never equal the
// winning triple: an accidental 555 has its leading digit swapped.
func (s *service) generate() domain.SpinResult {
	if s.randFloat() < s.winProbability {
		return domain.SpinResult{Numbers: domain.WinningTriple, IsWin: true}
	}

	var numbers [3]string
	for i := range numbers {
		numbers[i] = strconv.Itoa(s.randDigit())
	}
	if numbers == domain.WinningTriple {
		if domain.WinningTriple[0] == "0" {
			numbers[0] = "1"
		} else {
			numbers[0] = "0"
		}
	}
	return domain.SpinResult{Numbers: numbers, IsWin: false}
}

func resultLabel(isWin bool) string {
	if isWin {
		return metrics.LabelValueWin
	}
	return metrics.LabelValueLose
}
