package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGame(t *testing.T) {
	tests := []struct {
		input   string
		want    Game
		wantErr bool
	}{
		{input: "spin", want: GameSpin},
		{input: "wheel", want: GameWheel},
		{input: "slots", wantErr: true},
		{input: "", wantErr: true},
		{input: "Spin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			game, err := ParseGame(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidGame)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, game)
			assert.True(t, game.Valid())
		})
	}
}

func TestSpinResultNumber(t *testing.T) {
	tests := []struct {
		name    string
		numbers [3]string
		want    int
	}{
		{name: "winning triple", numbers: [3]string{"5", "5", "5"}, want: 555},
		{name: "leading zeros collapse", numbers: [3]string{"0", "4", "2"}, want: 42},
		{name: "all zeros", numbers: [3]string{"0", "0", "0"}, want: 0},
		{name: "max", numbers: [3]string{"9", "9", "9"}, want: 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SpinResult{Numbers: tt.numbers}
			assert.Equal(t, tt.want, r.Number())
		})
	}
}

func TestResolveIdentityKey(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 9, 26, 500*int(time.Millisecond), time.UTC)

	t.Run("caller key wins", func(t *testing.T) {
		assert.Equal(t, "alice", ResolveIdentityKey("alice", now))
	})

	t.Run("empty key falls back to epoch millis", func(t *testing.T) {
		assert.Equal(t, "1741964966500", ResolveIdentityKey("", now))
	})
}
