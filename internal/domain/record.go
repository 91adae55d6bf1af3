package domain

import "time"

// PrizeRecord is a winning outcome persisted to the external record store.
// Records are created only for wins; the outcome engine never mutates or
// deletes them afterwards, that happens only through the records CRUD API.
type PrizeRecord struct {
	// ID is the external page id assigned by the store. Empty on create.
	ID string `json:"id,omitempty"`

	// Key is the identity key the record was created under.
	Key string `json:"key" validate:"required"`

	// Timestamp is when the outcome was produced, UTC.
	Timestamp time.Time `json:"timestamp"`

	// Number encodes the outcome compactly: the concatenated three digits
	// for spin (always 555 for a win), the slot index for wheel.
	Number int `json:"number"`

	IsWin bool `json:"is_win"`

	// Checked is false at creation and reserved for downstream fulfilment.
	Checked bool `json:"checked"`

	// Game is informational; the store routes by database, not by field.
	Game Game `json:"game_type,omitempty"`
}
