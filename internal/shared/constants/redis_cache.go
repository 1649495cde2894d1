package constants

// Cache key prefixes and invalidation patterns for flight data.
// Keys are namespaced per entity so mutation handlers can invalidate
// with a single pattern delete.
const (
	KEY_FLIGHT_DETAIL = "aerobook:flight:detail:" // + flight ID
	KEY_FLIGHT_NUMBER = "aerobook:flight:number:" // + flight number
	KEY_FLIGHT_SEARCH = "aerobook:flight:search:" // + search fingerprint
	KEY_FLIGHT_UPCOMING = "aerobook:flight:upcoming"

	PATTERN_INVALIDATE_FLIGHT_ALL    = "aerobook:flight:*"
	PATTERN_INVALIDATE_FLIGHT_SEARCH = "aerobook:flight:search:*"
)
