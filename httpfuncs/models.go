package httpfuncs

import (
	"context"
	"net/http"
)

type RequestHandler func(reqArgs *RequestArgs) (*http.Response, error)

// FetchHandler is the function signature of FetchWithFallback. The
// repository facade takes one of these so tests can swap in a stub.
type FetchHandler func(reqArgs *RequestArgs) (*FetchResult, error)

type RequestArgs struct {
	// Main Request Options
	Method  string
	Timeout int

	// Url is the absolute URL to request. Used for single-host requests
	// such as the external search API; mutually exclusive with Path.
	Url string

	// Path is the API endpoint path (e.g. "/patreon/user/123/posts")
	// resolved against each candidate domain of Source in turn.
	Path   string
	Source string

	// Domains overrides the candidate domain list from the registry.
	// Mainly a test seam; leave nil to use the registry.
	Domains []string

	// Additional Request Options
	Headers            map[string]string
	Params             map[string]string
	UserAgent          string
	DisableCompression bool

	// HTTP/2 and HTTP/3 Options
	Http2 bool
	Http3 bool

	// Check status will check the status code of the response for 200 OK.
	// If the status code is not 200 OK, an error is returned.
	// Otherwise, the response is returned regardless of the status code.
	CheckStatus bool

	// Context is used to cancel the request if needed.
	// E.g. if the user presses Ctrl+C, we can use context.WithCancel(context.Background())
	Context context.Context

	// RequestHandler is the function that will be called to make a
	// single request during the fallback pass.
	RequestHandler RequestHandler
}

// FetchResult is the outcome of a successful fallback fetch. Domain is
// the candidate that answered and doubles as a session-affinity hint
// the caller may cache for building media URLs.
type FetchResult struct {
	Body       []byte
	StatusCode int
	Domain     string
	Url        string
}
