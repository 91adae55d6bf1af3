package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Game operation error messages
	ErrMsgSpinFailed  = "Failed to process spin"
	ErrMsgWheelFailed = "Failed to process wheel spin"

	// Record operation error messages
	ErrMsgCreateRecordFailed = "Failed to create record"
	ErrMsgListRecordsFailed  = "Failed to list records"
	ErrMsgUpdateRecordFailed = "Failed to update record"
	ErrMsgDeleteRecordFailed = "Failed to delete record"
	ErrMsgRecordIDRequired   = "Record id is required"
	ErrMsgInvalidTimestamp   = "Invalid timestamp; expected RFC 3339"
)

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgTooManyRequestsError = "Daily win limit reached. Try again tomorrow."
	ErrMsgInvalidGameError     = "Unknown game type"
	ErrMsgRecordNotFoundError  = "Record not found"
	ErrMsgStoreError           = "Record store is unavailable. Please try again later."
)

// Success messages for API responses
const (
	MsgRecordCreatedSuccess = "Record created successfully"
	MsgRecordUpdatedSuccess = "Record updated successfully"
	MsgRecordDeletedSuccess = "Record deleted successfully"
)
