package domain

// WheelSlot is one weighted option on the prize wheel. A slot with weight 0
// can never be selected; such slots exist only as visual placeholders.
type WheelSlot struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// WheelResult represents the outcome of a wheel play
type WheelResult struct {
	PrizeIndex int    `json:"prize_index"` // 0-based slot index
	PrizeName  string `json:"prize_name"`
	IsWin      bool   `json:"is_win"`
}
