package wheel

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fortuna-games/fortuna/internal/domain"
	"github.com/fortuna-games/fortuna/mocks"
)

func testSlots() []domain.WheelSlot {
	return []domain.WheelSlot{
		{Name: "Grand Prize", Weight: 0},
		{Name: "Try Again", Weight: 30},
		{Name: "50 Credits", Weight: 5},
		{Name: "Better Luck Next Time", Weight: 35},
		{Name: "Mystery Box", Weight: 0},
		{Name: "Try Again", Weight: 30},
		{Name: "100 Credits", Weight: 5},
		{Name: "Better Luck Next Time", Weight: 35},
	}
}

func testWinning() map[int]bool {
	return map[int]bool{2: true, 6: true}
}

func newTestService(t *testing.T) (*service, *mocks.MockRecords, *mocks.MockDailyLimitService) {
	t.Helper()

	records := mocks.NewMockRecords(t)
	limiter := mocks.NewMockDailyLimitService(t)

	svc, err := NewService(records, limiter, testSlots(), testWinning())
	require.NoError(t, err)

	s := svc.(*service)
	s.now = func() time.Time {
		return time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	}
	return s, records, limiter
}

func TestNewService_Validation(t *testing.T) {
	records := mocks.NewMockRecords(t)
	limiter := mocks.NewMockDailyLimitService(t)

	tests := []struct {
		name    string
		slots   []domain.WheelSlot
		winning map[int]bool
	}{
		{
			name:    "negative weight",
			slots:   []domain.WheelSlot{{Name: "A", Weight: -1}, {Name: "B", Weight: 10}},
			winning: map[int]bool{},
		},
		{
			name:    "all zero weights",
			slots:   []domain.WheelSlot{{Name: "A", Weight: 0}, {Name: "B", Weight: 0}},
			winning: map[int]bool{},
		},
		{
			name:    "empty table",
			slots:   nil,
			winning: map[int]bool{},
		},
		{
			name:    "winning index out of range",
			slots:   []domain.WheelSlot{{Name: "A", Weight: 1}},
			winning: map[int]bool{3: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewService(records, limiter, tt.slots, tt.winning)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrBadWheelConfig)
			assert.Nil(t, svc)
		})
	}
}

func TestSelectSlot_RollMapping(t *testing.T) {
	svc, _, _ := newTestService(t)

	// Total weight is 140. Cumulative boundaries per slot:
	// [0, 0) -, [0, 30) 1, [30, 35) 2, [35, 70) 3, [70, 70) -, [70, 100) 5,
	// [100, 105) 6, [105, 140) 7.
	tests := []struct {
		roll      int
		wantIndex int
		wantWin   bool
	}{
		{roll: 0, wantIndex: 1, wantWin: false},
		{roll: 29, wantIndex: 1, wantWin: false},
		{roll: 30, wantIndex: 2, wantWin: true},
		{roll: 34, wantIndex: 2, wantWin: true},
		{roll: 35, wantIndex: 3, wantWin: false},
		{roll: 69, wantIndex: 3, wantWin: false},
		{roll: 70, wantIndex: 5, wantWin: false},
		{roll: 100, wantIndex: 6, wantWin: true},
		{roll: 104, wantIndex: 6, wantWin: true},
		{roll: 105, wantIndex: 7, wantWin: false},
		{roll: 139, wantIndex: 7, wantWin: false},
	}

	for _, tt := range tests {
		svc.rng = func(int) int { return tt.roll }
		result := svc.selectSlot()
		assert.Equal(t, tt.wantIndex, result.PrizeIndex, "roll %d", tt.roll)
		assert.Equal(t, tt.wantWin, result.IsWin, "roll %d", tt.roll)
		assert.Equal(t, testSlots()[tt.wantIndex].Name, result.PrizeName, "roll %d", tt.roll)
	}
}

func TestSelectSlot_Distribution(t *testing.T) {
	svc, _, _ := newTestService(t)

	src := rand.New(rand.NewSource(42)) //nolint:gosec // Deterministic test randomness
	svc.rng = src.Intn

	const trials = 100000
	counts := make(map[int]int)
	for i := 0; i < trials; i++ {
		result := svc.selectSlot()
		counts[result.PrizeIndex]++
	}

	// Zero-weight slots are unreachable.
	assert.Zero(t, counts[0], "zero-weight slot 0 must never be selected")
	assert.Zero(t, counts[4], "zero-weight slot 4 must never be selected")

	// Empirical frequencies track the weights. 5/140 for slot 2 with a
	// generous tolerance for 100k trials.
	freq2 := float64(counts[2]) / trials
	assert.InDelta(t, 5.0/140.0, freq2, 0.005, "slot 2 frequency")

	freq3 := float64(counts[3]) / trials
	assert.InDelta(t, 35.0/140.0, freq3, 0.01, "slot 3 frequency")

	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, trials, total)
}

func TestWinDependsOnIndexNotName(t *testing.T) {
	// Slots 1 and 5 share a name with no win, slots 3 and 7 likewise. A
	// winning slot renamed to match a losing one must still win.
	records := mocks.NewMockRecords(t)
	limiter := mocks.NewMockDailyLimitService(t)

	slots := testSlots()
	slots[2].Name = "Try Again" // same name as losing slots 1 and 5

	svc, err := NewService(records, limiter, slots, testWinning())
	require.NoError(t, err)

	s := svc.(*service)
	s.rng = func(int) int { return 30 } // lands on slot 2

	result := s.selectSlot()
	assert.Equal(t, 2, result.PrizeIndex)
	assert.Equal(t, "Try Again", result.PrizeName)
	assert.True(t, result.IsWin)

	s.rng = func(int) int { return 0 } // lands on slot 1, same name
	result = s.selectSlot()
	assert.Equal(t, 1, result.PrizeIndex)
	assert.False(t, result.IsWin)
}

func TestPlay_WinIsPersisted(t *testing.T) {
	svc, records, limiter := newTestService(t)
	svc.rng = func(int) int { return 30 } // slot 2, winning

	limiter.On("HasReachedLimit", mock.Anything, "u1", domain.GameWheel).Return(false, nil).Once()
	records.On("Create", mock.Anything, mock.MatchedBy(func(rec domain.PrizeRecord) bool {
		return rec.Key == "u1" && rec.IsWin && rec.Number == 2 && rec.Game == domain.GameWheel
	}), domain.GameWheel).Return(nil).Once()

	result, err := svc.Play(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, 2, result.PrizeIndex)
	assert.True(t, result.IsWin)
}

func TestPlay_PersistFailureDoesNotAlterOutcome(t *testing.T) {
	svc, records, limiter := newTestService(t)
	svc.rng = func(int) int { return 30 }

	limiter.On("HasReachedLimit", mock.Anything, "u1", domain.GameWheel).Return(false, nil).Once()
	records.On("Create", mock.Anything, mock.Anything, domain.GameWheel).
		Return(errors.New("store exploded")).Once()

	result, err := svc.Play(context.Background(), "u1")

	// The caller still gets the computed outcome.
	require.NoError(t, err)
	assert.Equal(t, 2, result.PrizeIndex)
	assert.True(t, result.IsWin)
}

func TestPlay_LimitReachedIsSwallowed(t *testing.T) {
	svc, records, limiter := newTestService(t)
	svc.rng = func(int) int { return 100 } // slot 6, winning

	limiter.On("HasReachedLimit", mock.Anything, "u1", domain.GameWheel).Return(true, nil).Once()

	result, err := svc.Play(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, 6, result.PrizeIndex)
	assert.True(t, result.IsWin)
	records.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlay_LimitCheckErrorIsSwallowed(t *testing.T) {
	svc, records, limiter := newTestService(t)
	svc.rng = func(int) int { return 30 }

	limiter.On("HasReachedLimit", mock.Anything, "u1", domain.GameWheel).
		Return(false, domain.ErrStoreUnavailable).Once()

	result, err := svc.Play(context.Background(), "u1")

	require.NoError(t, err)
	assert.True(t, result.IsWin)
	records.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlay_LosingSlotSkipsPersistence(t *testing.T) {
	svc, records, limiter := newTestService(t)
	svc.rng = func(int) int { return 0 } // slot 1, losing

	result, err := svc.Play(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, 1, result.PrizeIndex)
	assert.False(t, result.IsWin)
	limiter.AssertNotCalled(t, "HasReachedLimit", mock.Anything, mock.Anything, mock.Anything)
	records.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlay_ClampToLastSlot(t *testing.T) {
	svc, _, _ := newTestService(t)
	svc.rng = func(n int) int { return n } // out-of-contract rng

	result := svc.selectSlot()
	assert.Equal(t, len(testSlots())-1, result.PrizeIndex)
}
