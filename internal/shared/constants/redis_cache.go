package constants

import (
	"fmt"
	"time"
)

// Redis cache keys and TTL values for the buslink application.
// Pattern: buslink:{module}:{operation}:{identifier}:{params?}

// Static data (rarely changes)
const (
	TTL_STATIC_LONG  = 24 * time.Hour // seat tiers, locations
	TTL_STATIC_SHORT = 6 * time.Hour  // company/branch profiles
)

// Semi-static data (changes occasionally)
const (
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // route details, bus layouts
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // schedule listings
)

// Dynamic data (changes frequently)
const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // liquidation summaries
	TTL_DYNAMIC_SHORT  = 5 * time.Minute  // schedule detail
)

// Real-time sensitive
const (
	TTL_REALTIME_SHORT = 30 * time.Second // seat availability
)

const CACHE_PREFIX = "buslink"

// Cache keys
const (
	CACHE_KEY_SCHEDULE_AVAILABILITY = CACHE_PREFIX + ":schedules:availability:uuid:" // + schedule-id
	CACHE_KEY_SCHEDULE_DETAIL       = CACHE_PREFIX + ":schedules:detail:uuid:"       // + schedule-id
	CACHE_KEY_SCHEDULE_LIST         = CACHE_PREFIX + ":schedules:list"               // + :page:X:limit:Y
	CACHE_KEY_BUS_SEATS             = CACHE_PREFIX + ":fleet:seats:bus:"             // + bus-id
	CACHE_KEY_SEAT_TIERS            = CACHE_PREFIX + ":fleet:tiers:company:"         // + company-id
	CACHE_KEY_LOCATIONS_ACTIVE      = CACHE_PREFIX + ":locations:active:all"
	CACHE_KEY_ROUTE_DETAIL          = CACHE_PREFIX + ":routes:detail:uuid:" // + route-id
	CACHE_KEY_PARCEL_TRACKING       = CACHE_PREFIX + ":parcels:tracking:"   // + tracking-code
	CACHE_KEY_LIQUIDATION           = CACHE_PREFIX + ":finances:liquidation:uuid:" // + liquidation-id
)

// TTLs by key family
const (
	TTL_SCHEDULE_AVAILABILITY = TTL_REALTIME_SHORT
	TTL_SCHEDULE_DETAIL       = TTL_DYNAMIC_SHORT
	TTL_BUS_SEATS             = TTL_SEMI_STATIC_MEDIUM
	TTL_SEAT_TIERS            = TTL_STATIC_LONG
	TTL_LOCATIONS             = TTL_STATIC_LONG
	TTL_PARCEL_TRACKING       = TTL_DYNAMIC_SHORT
	TTL_LIQUIDATION           = TTL_DYNAMIC_MEDIUM
)

// Invalidation patterns
const (
	PATTERN_INVALIDATE_SCHEDULES = CACHE_PREFIX + ":schedules:*"
	PATTERN_INVALIDATE_FLEET     = CACHE_PREFIX + ":fleet:*"
	PATTERN_INVALIDATE_LOCATIONS = CACHE_PREFIX + ":locations:*"
)

func BuildAvailabilityKey(scheduleID string) string {
	return CACHE_KEY_SCHEDULE_AVAILABILITY + scheduleID
}

func BuildScheduleDetailKey(scheduleID string) string {
	return CACHE_KEY_SCHEDULE_DETAIL + scheduleID
}

func BuildBusSeatsKey(busID string) string {
	return CACHE_KEY_BUS_SEATS + busID
}

func BuildParcelTrackingKey(code string) string {
	return CACHE_KEY_PARCEL_TRACKING + code
}

func BuildScheduleListKey(page, limit int) string {
	return fmt.Sprintf("%s:page:%d:limit:%d", CACHE_KEY_SCHEDULE_LIST, page, limit)
}
