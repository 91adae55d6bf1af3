package dailylimit

import "time"

const (
	// DefaultDailyLimit applies when a game has no configured cap.
	DefaultDailyLimit = 1

	// ReachedCacheSize bounds the reached-limit verdict cache.
	ReachedCacheSize = 4096

	// ReachedCacheTTL is how long a reached verdict is trusted without
	// re-querying the store. Short enough that out-of-band record deletion
	// is honored within a minute.
	ReachedCacheTTL = time.Minute

	// dayKeyFormat keys cache entries by UTC calendar day.
	dayKeyFormat = "2006-01-02"
)
