package domain

import (
	"strconv"
	"time"
)

// ResolveIdentityKey returns the caller-supplied identity key, or derives a
// fallback from the request time (millisecond epoch, stringified) when the
// caller sent none. The fallback is intentionally not a stable per-user
// identifier; rate limiting only correlates requests that share a key.
func ResolveIdentityKey(key string, now time.Time) string {
	if key != "" {
		return key
	}
	return strconv.FormatInt(now.UnixMilli(), 10)
}
