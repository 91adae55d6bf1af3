package config

import "github.com/fortuna-games/fortuna/internal/domain"

// Service defaults
const (
	DefaultServiceName = "fortuna"

	// DefaultNotionBaseURL is the production record store endpoint.
	// Overridable for tests and local fakes via NOTION_BASE_URL.
	DefaultNotionBaseURL = "https://api.notion.com"

	// DefaultSpinWinProbability is the chance a spin produces the winning triple.
	DefaultSpinWinProbability = "0.05"

	// DefaultDailyLimit caps persisted wins per identity key per game per UTC day.
	DefaultDailyLimit = 1
)

// defaultWheelSlots returns the built-in 8-slot prize table. Zero-weight
// slots are unselectable placeholders shown on the wheel face only.
func defaultWheelSlots() []domain.WheelSlot {
	return []domain.WheelSlot{
		{Name: "Grand Prize", Weight: 0},
		{Name: "Try Again", Weight: 30},
		{Name: "50 Credits", Weight: 5},
		{Name: "Better Luck", Weight: 35},
		{Name: "Mystery Box", Weight: 0},
		{Name: "Try Again", Weight: 30},
		{Name: "100 Credits", Weight: 5},
		{Name: "Better Luck", Weight: 35},
	}
}

// defaultWheelWinningSlots marks the credit slots of the built-in table.
func defaultWheelWinningSlots() map[int]bool {
	return map[int]bool{2: true, 6: true}
}
