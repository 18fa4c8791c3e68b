package parsers

import (
	"strconv"
	"time"
)

// The "2024-05-24T15:00:00" layout the mirrors use for post timestamps.
// The value returned is UTC+0 despite carrying no zone marker.
const API_DATETIME_LAYOUT = "2006-01-02T15:04:05"

// GetString returns the value under key as a string, or "" when the
// field is missing or not a string.
func GetString(rec Record, key string) string {
	value, _ := rec[key].(string)
	return value
}

// GetStringOr is GetString with a caller-supplied fallback.
func GetStringOr(rec Record, key, fallback string) string {
	if value, ok := rec[key].(string); ok && value != "" {
		return value
	}
	return fallback
}

// GetInt returns the value under key as an int, accepting JSON numbers
// and numeric strings. Missing or malformed fields become 0.
func GetInt(rec Record, key string) int {
	switch value := rec[key].(type) {
	case float64:
		return int(value)
	case string:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// CoerceBool converts the numeric-looking boolean fields the API uses
// ("favorited" as 0/1) along with plain booleans and string forms.
func CoerceBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v > 0
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed > 0
		}
		return v == "true"
	default:
		return false
	}
}

// ParseTimestamp converts a wire timestamp into a time.Time, accepting
// both ISO-8601 strings and integer epoch-seconds (ISO is tried first).
// On failure the given fallback is returned along with true so callers
// and tests can tell a parsed value from a degraded one. The silent
// defaulting is intentional lossy degradation, not corruption.
func ParseTimestamp(value any, fallback time.Time) (time.Time, bool) {
	switch v := value.(type) {
	case string:
		if v == "" {
			return fallback, true
		}
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			return parsed, false
		}
		if parsed, err := time.Parse(API_DATETIME_LAYOUT, v); err == nil {
			return parsed, false
		}
		if epoch, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.Unix(epoch, 0).UTC(), false
		}
		return fallback, true
	case float64:
		return time.Unix(int64(v), 0).UTC(), false
	default:
		return fallback, true
	}
}
