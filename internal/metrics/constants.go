package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameSpinsTotal            = "spins_total"
	MetricNameWheelSpinsTotal       = "wheel_spins_total"
	MetricNameRecordsPersistedTotal = "prize_records_persisted_total"
	MetricNameLimitRejectionsTotal  = "daily_limit_rejections_total"
	MetricNamePersistFailuresTotal  = "prize_record_persist_failures_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextSpinsTotal            = "Total number of spin plays by result"
	HelpTextWheelSpinsTotal       = "Total number of wheel plays by result"
	HelpTextRecordsPersistedTotal = "Total number of winning records persisted to the store"
	HelpTextLimitRejectionsTotal  = "Total number of wins not recorded because the daily limit was reached"
	HelpTextPersistFailuresTotal  = "Total number of failed attempts to persist a winning record"
)

// ============================================================================
// Label Names and Values
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelResult = "result"
	LabelGame   = "game"
)

const (
	LabelValueWin  = "win"
	LabelValueLose = "lose"
)

// HTTPLatencyBuckets covers the expected latency range: in-process work plus
// one or two store round trips.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
