package party

import (
	"context"
	"fmt"

	"github.com/IR2816/Party-Gallery-Logic/constants"
	pgerrors "github.com/IR2816/Party-Gallery-Logic/errors"
	"github.com/IR2816/Party-Gallery-Logic/httpfuncs"
)

// ClientArgs carries the per-call options shared by every endpoint
// function in this package.
type ClientArgs struct {
	// Source selects which mirror's domains and headers to use
	// (constants.KEMONO or constants.COOMER).
	Source string

	UserAgent string

	// ApiTimeout is the per-request timeout in seconds. Zero means
	// constants.DEFAULT_API_TIMEOUT; the creator index fetch raises an
	// unset timeout to constants.INDEX_REQ_TIMEOUT on its own.
	ApiTimeout int

	// Domains overrides the registry's candidate list. Test seam.
	Domains []string

	// Fetch is the fallback fetcher; defaults to httpfuncs.FetchWithFallback.
	Fetch httpfuncs.FetchHandler

	// RequestHandler performs single-host requests (the external
	// search API); defaults to httpfuncs.CallRequest.
	RequestHandler httpfuncs.RequestHandler

	Context context.Context
}

// ValidateArgs fills in defaults and panics on developer errors.
// Should be called before the first endpoint call.
func (args *ClientArgs) ValidateArgs() {
	if args.Source == "" {
		args.Source = constants.KEMONO
	}
	if args.Source != constants.KEMONO && args.Source != constants.COOMER {
		panic(
			fmt.Errorf(
				"error %d: invalid api source, %q, in ClientArgs",
				pgerrors.DEV_ERROR,
				args.Source,
			),
		)
	}

	if args.Fetch == nil {
		args.Fetch = httpfuncs.FetchWithFallback
	}
	if args.RequestHandler == nil {
		args.RequestHandler = httpfuncs.CallRequest
	}
	if args.Context == nil {
		args.Context = context.Background()
	}
}

func (args *ClientArgs) newReqArgs(path string, params, headers map[string]string) *httpfuncs.RequestArgs {
	return &httpfuncs.RequestArgs{
		Method:    "GET",
		Timeout:   args.ApiTimeout,
		Path:      path,
		Source:    args.Source,
		Domains:   args.Domains,
		Params:    params,
		Headers:   headers,
		UserAgent: args.UserAgent,
		Context:   args.Context,
	}
}
