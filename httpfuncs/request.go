package httpfuncs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	pgerrors "github.com/IR2816/Party-Gallery-Logic/errors"
	"github.com/quic-go/quic-go/http3"
)

// Get a new HTTP/2 or HTTP/3 client based on the request arguments
func GetHttpClient(reqArgs *RequestArgs) *http.Client {
	if reqArgs.Http2 {
		return &http.Client{
			Transport: &http.Transport{
				DisableCompression: reqArgs.DisableCompression,
			},
		}
	}
	return &http.Client{
		Transport: &http3.RoundTripper{
			DisableCompression: reqArgs.DisableCompression,
		},
	}
}

// add headers to the request
func AddHeaders(headers map[string]string, defaultUserAgent string, req *http.Request) {
	if len(headers) == 0 {
		return
	}

	if userAgent, ok := headers["User-Agent"]; !ok || userAgent == "" {
		headers["User-Agent"] = defaultUserAgent
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}
}

// add params to the request
func AddParams(params map[string]string, req *http.Request) {
	if len(params) == 0 {
		return
	}

	query := req.URL.Query()
	for key, value := range params {
		query.Add(key, value)
	}
	req.URL.RawQuery = query.Encode()
}

// sendRequest makes a single request to the given URL. There is no
// retry here; resilience comes from the domain fallback pass instead.
func sendRequest(reqArgs *RequestArgs, reqUrl string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(
		reqArgs.Context,
		reqArgs.Method,
		reqUrl,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf(
			"error %d: unable to create a new request, more info => %w",
			pgerrors.DEV_ERROR,
			err,
		)
	}

	AddHeaders(reqArgs.Headers, reqArgs.UserAgent, req)
	AddParams(reqArgs.Params, req)

	client := GetHttpClient(reqArgs)
	client.Timeout = time.Duration(reqArgs.Timeout) * time.Second
	res, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, context.Canceled
		}
		return nil, fmt.Errorf(
			"error %d: the request to %s failed, more info => %w",
			pgerrors.CONNECTION_ERROR,
			reqUrl,
			err,
		)
	}

	if reqArgs.CheckStatus && res.StatusCode != 200 {
		res.Body.Close()
		return nil, fmt.Errorf(
			"error %d: the request to %s returned status code => %s",
			pgerrors.RESPONSE_ERROR,
			reqUrl,
			res.Status,
		)
	}
	return res, nil
}

// CallRequest makes a single request to an absolute URL and returns the
// response. Used for single-host endpoints such as the external search
// API; API endpoint requests should go through FetchWithFallback instead.
func CallRequest(reqArgs *RequestArgs) (*http.Response, error) {
	reqArgs.ValidateArgs()
	return sendRequest(reqArgs, reqArgs.Url)
}
