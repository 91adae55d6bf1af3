package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Rate limiting errors
	ErrMsgLimitReached = "daily win limit reached"

	// Store errors
	ErrMsgStoreUnavailable = "record store unavailable"
	ErrMsgStoreRejected    = "record store rejected request"
	ErrMsgBadStoreResponse = "unexpected record store response"
	ErrMsgRecordNotFound   = "record not found"

	// Configuration errors
	ErrMsgUnconfiguredGame = "game has no configured database"
	ErrMsgInvalidGame      = "invalid game"
	ErrMsgBadWheelConfig   = "invalid wheel configuration"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrLimitReached means the identity key already has its daily quota of
	// persisted wins for the game. Recoverable by the caller waiting a day.
	ErrLimitReached = errors.New(ErrMsgLimitReached)

	// ErrStoreUnavailable covers transport-level failures reaching the store.
	// Never retried internally.
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)

	// ErrStoreRejected covers non-2xx responses from the store.
	ErrStoreRejected = errors.New(ErrMsgStoreRejected)

	// ErrBadStoreResponse means the store answered with a shape that does not
	// parse into a PrizeRecord. Treated the same as a store failure.
	ErrBadStoreResponse = errors.New(ErrMsgBadStoreResponse)

	ErrRecordNotFound = errors.New(ErrMsgRecordNotFound)

	// ErrUnconfiguredGame is a startup-time defect: a game type with no
	// database id. It must never be reached in steady state.
	ErrUnconfiguredGame = errors.New(ErrMsgUnconfiguredGame)

	ErrInvalidGame = errors.New(ErrMsgInvalidGame)

	// ErrBadWheelConfig means the weight table cannot produce an outcome
	// (zero total weight, negative weight, winning index out of range).
	ErrBadWheelConfig = errors.New(ErrMsgBadWheelConfig)
)
