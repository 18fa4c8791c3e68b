package httpfuncs

import (
	"context"
	"fmt"
	"strings"

	"github.com/IR2816/Party-Gallery-Logic/constants"
	pgerrors "github.com/IR2816/Party-Gallery-Logic/errors"
)

func (args *RequestArgs) validateHttpVersionArgs() {
	if !args.Http2 && !args.Http3 {
		// The mirror API endpoints only speak HTTP/2 while the media
		// CDNs support HTTP/3, so infer from the request kind.
		if args.Source != "" {
			args.Http3 = IsHttp3Supported(args.Source, args.Path != "")
			args.Http2 = !args.Http3
		} else {
			args.Http2 = true
		}
	} else if args.Http2 && args.Http3 {
		panic(
			fmt.Errorf(
				"error %d: http2 and http3 cannot be enabled at the same time",
				pgerrors.DEV_ERROR,
			),
		)
	}
}

func (args *RequestArgs) getDefaultArgs() {
	if args.RequestHandler == nil {
		args.RequestHandler = CallRequest
	}

	if args.Headers == nil {
		args.Headers = make(map[string]string)
	}

	if args.Params == nil {
		args.Params = make(map[string]string)
	}

	if args.Method == "" {
		args.Method = "GET"
	}

	if args.UserAgent == "" {
		args.UserAgent = DEFAULT_USER_AGENT
	}

	if args.Context == nil {
		args.Context = context.Background()
	}
}

// ValidateArgs validates the arguments of the request
//
// Will panic if the arguments are invalid as this is a developer error
func (args *RequestArgs) ValidateArgs() {
	args.getDefaultArgs()
	args.validateHttpVersionArgs()

	if args.Url == "" && args.Path == "" {
		panic(
			fmt.Errorf(
				"error %d: url and path cannot both be empty",
				pgerrors.DEV_ERROR,
			),
		)
	}

	if args.Url != "" && args.Path != "" {
		panic(
			fmt.Errorf(
				"error %d: url and path cannot both be set",
				pgerrors.DEV_ERROR,
			),
		)
	}

	if args.Path != "" {
		if args.Source == "" && len(args.Domains) == 0 {
			panic(
				fmt.Errorf(
					"error %d: an api source is required when a path is given",
					pgerrors.DEV_ERROR,
				),
			)
		}
		if !strings.HasPrefix(args.Path, "/") {
			args.Path = "/" + args.Path
		}
	}

	if args.Timeout < 0 {
		panic(
			fmt.Errorf(
				"error %d: timeout cannot be negative",
				pgerrors.DEV_ERROR,
			),
		)
	} else if args.Timeout == 0 {
		args.Timeout = constants.DEFAULT_API_TIMEOUT
	}
}
