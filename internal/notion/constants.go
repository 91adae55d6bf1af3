package notion

import "time"

// API configuration
const (
	// APIVersion is sent as the Notion-Version header on every request.
	APIVersion = "2022-06-28"

	// RequestTimeout bounds a single store call. Requests are never retried.
	RequestTimeout = 30 * time.Second

	// QueryPageSize is the fixed page size for database queries.
	QueryPageSize = 100

	// MaxErrorBodyBytes limits how much of an error response body is kept
	// for diagnostics.
	MaxErrorBodyBytes = 2048
)

// Endpoint paths
const (
	pathPages         = "/v1/pages"
	pathDatabaseQuery = "/v1/databases/%s/query"
	pathPage          = "/v1/pages/%s"
	pathDatabases     = "/v1/databases"
)

// Property names of the record schema. These match the databases created by
// cmd/setup.
const (
	PropKey      = "key"
	PropDatetime = "datetime"
	PropNumber   = "number"
	PropIsWin    = "is_win"
	PropChecked  = "checked"
)
