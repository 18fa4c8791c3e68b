package httpfuncs

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/IR2816/Party-Gallery-Logic/domains"
	pgerrors "github.com/IR2816/Party-Gallery-Logic/errors"
	"github.com/PuerkitoBio/goquery"
)

const SNIPPET_LEN = 120

// The mirrors sometimes answer failures with a 200 landing/error page
// instead of a proper status code, so a body that starts with an HTML
// marker counts as a failure regardless of the status.
var htmlMarkers = []string{"<!doctype", "<html", "<head", "<body"}

func IsHtmlBody(body []byte) bool {
	trimmed := strings.ToLower(string(bytes.TrimLeft(body, " \t\r\n")))
	for _, marker := range htmlMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}

// htmlErrorTitle pulls the <title> out of an HTML-disguised error page
// for the diagnostics. Best-effort; returns "" on any parse failure.
func htmlErrorTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

func bodySnippet(body []byte) string {
	snippet := strings.TrimSpace(string(body))
	if len(snippet) > SNIPPET_LEN {
		snippet = snippet[:SNIPPET_LEN]
	}
	return snippet
}

// DomainDiagnostic records why a single candidate domain was rejected
// during a fallback pass.
type DomainDiagnostic struct {
	Domain     string
	StatusCode int
	IsHtml     bool
	HtmlTitle  string
	Snippet    string
	Err        error
}

func (d *DomainDiagnostic) String() string {
	if d.Err != nil {
		return fmt.Sprintf("domain %s => %v", d.Domain, d.Err)
	}
	if d.IsHtml {
		return fmt.Sprintf(
			"domain %s => status %d with an HTML body (title: %q, snippet: %q)",
			d.Domain,
			d.StatusCode,
			d.HtmlTitle,
			d.Snippet,
		)
	}
	return fmt.Sprintf(
		"domain %s => status %d (snippet: %q)",
		d.Domain,
		d.StatusCode,
		d.Snippet,
	)
}

// FallbackError is returned when every candidate domain has been tried
// without a usable response. Last holds the diagnostic of the final
// domain attempted.
type FallbackError struct {
	Source   string
	Attempts int
	Last     *DomainDiagnostic
}

func (e *FallbackError) Error() string {
	return fmt.Sprintf(
		"error %d: all %d %s mirror domains failed, last attempt => %s",
		pgerrors.CONNECTION_ERROR,
		e.Attempts,
		e.Source,
		e.Last.String(),
	)
}

func (e *FallbackError) Unwrap() error {
	return e.Last.Err
}

// FetchWithFallback resolves the ordered candidate domains for the
// request's api source and issues the request against each in turn
// until one answers with a usable response.
//
// A response is a failure if its status code is outside [200, 400) or
// its body is an HTML page; both advance to the next domain (a 404 is
// not special-cased). The first success is returned immediately with
// the winning domain recorded on the result. A single pass is made over
// the domain list with no further retries.
func FetchWithFallback(reqArgs *RequestArgs) (*FetchResult, error) {
	reqArgs.ValidateArgs()
	if reqArgs.Path == "" {
		panic(
			fmt.Errorf(
				"error %d: FetchWithFallback requires an endpoint path",
				pgerrors.DEV_ERROR,
			),
		)
	}

	candidates := reqArgs.Domains
	if len(candidates) == 0 {
		candidates = domains.CandidateDomains(reqArgs.Source)
	}
	headers := MergeHeaders(ApiHeaders(), reqArgs.Headers)

	var last *DomainDiagnostic
	for _, domain := range candidates {
		reqUrl := domains.ApiBase(domain) + reqArgs.Path

		perDomainArgs := *reqArgs
		perDomainArgs.Url = reqUrl
		perDomainArgs.Path = ""
		perDomainArgs.Headers = headers
		perDomainArgs.CheckStatus = false

		res, err := perDomainArgs.RequestHandler(&perDomainArgs)
		if err != nil {
			last = &DomainDiagnostic{Domain: domain, Err: err}
			continue
		}

		body, err := ReadResBody(res)
		if err != nil {
			last = &DomainDiagnostic{Domain: domain, Err: err}
			continue
		}

		diag := &DomainDiagnostic{
			Domain:     domain,
			StatusCode: res.StatusCode,
			Snippet:    bodySnippet(body),
		}
		if res.StatusCode < 200 || res.StatusCode >= 400 {
			last = diag
			continue
		}
		if IsHtmlBody(body) {
			diag.IsHtml = true
			diag.HtmlTitle = htmlErrorTitle(body)
			last = diag
			continue
		}

		return &FetchResult{
			Body:       body,
			StatusCode: res.StatusCode,
			Domain:     domain,
			Url:        reqUrl,
		}, nil
	}

	return nil, &FallbackError{
		Source:   reqArgs.Source,
		Attempts: len(candidates),
		Last:     last,
	}
}
