// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// BookingSessionPrefix is the prefix for cached booking-flow sessions.
const BookingSessionPrefix = "booking-session:"

// BookingSessionTTL is how long an abandoned booking-flow session survives.
const BookingSessionTTL = 30 * time.Minute
