package pgerrors

import (
	"errors"
)

// Error codes embedded in error messages for easier
// identification when the user sends in their logs
const (
	DEV_ERROR = iota + 1000
	UNEXPECTED_ERROR
	OS_ERROR
	INPUT_ERROR
	CONNECTION_ERROR
	RESPONSE_ERROR
	JSON_ERROR
	HTML_ERROR
	CACHE_ERROR
)

var (
	// Returned by the Discord endpoints when the mirror answers
	// with 503 instead of the usual HTML-disguised error page
	ErrTemporarilyUnavailable = errors.New("the service is temporarily unavailable")

	ErrStaleIndex = errors.New("cached creator index is older than 24 hours")
	ErrNoMatch    = errors.New("no recognisable payload shape in response")
)
