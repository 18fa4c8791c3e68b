// Package domains holds the static registry of known mirror domains for
// the two service families and the URL-building rules for their API,
// media, and thumbnail endpoints.
package domains

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/IR2816/Party-Gallery-Logic/constants"
	pgerrors "github.com/IR2816/Party-Gallery-Logic/errors"
)

// label(.label)+ e.g. "kemono.su", "img.coomer.st"
var DOMAIN_REGEX = regexp.MustCompile(
	`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?)+$`,
)

var candidateDomains = map[string][]string{
	constants.KEMONO: constants.KEMONO_DOMAINS,
	constants.COOMER: constants.COOMER_DOMAINS,
}

func validateSource(source string) {
	if _, ok := candidateDomains[source]; !ok {
		// panic since this is a dev error
		panic(
			fmt.Errorf(
				"error %d: invalid api source, %q, passed to the domain registry",
				pgerrors.DEV_ERROR,
				source,
			),
		)
	}
}

// CandidateDomains returns the ordered list of base domains to try for
// the given api source. The returned slice must not be mutated.
func CandidateDomains(source string) []string {
	validateSource(source)
	return candidateDomains[source]
}

// OverrideDomains replaces the candidate list for the given api source.
// Invalid domain strings are dropped; an empty result leaves the
// registry unchanged.
func OverrideDomains(source string, domains []string) {
	validateSource(source)

	valid := make([]string, 0, len(domains))
	for _, domain := range domains {
		domain = NormalizeDomain(domain)
		if IsValidDomain(domain) {
			valid = append(valid, domain)
		}
	}
	if len(valid) > 0 {
		candidateDomains[source] = valid
	}
}

// PrimaryDomain returns the first candidate domain for the given api source.
func PrimaryDomain(source string) string {
	return CandidateDomains(source)[0]
}

func ApiBase(domain string) string {
	return "https://" + domain + constants.API_PATH
}

func MediaBase(domain string) string {
	return "https://" + constants.MEDIA_SUBDOMAIN + "." + domain
}

func ThumbnailBase(domain string) string {
	return "https://" + constants.THUMBNAIL_SUBDOMAIN + "." + domain + constants.THUMBNAIL_PATH
}

// MediaUrl resolves a relative file path returned by the API against the
// media CDN subdomain of the given mirror domain.
func MediaUrl(domain, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return MediaBase(domain) + path
}

// ThumbnailUrl resolves a relative file path against the thumbnail CDN
// of the given mirror domain.
func ThumbnailUrl(domain, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return ThumbnailBase(domain) + path
}

// IsValidDomain reports whether the given string is a bare domain of the
// form label(.label)+ without a scheme, path, or port.
func IsValidDomain(domain string) bool {
	return DOMAIN_REGEX.MatchString(domain)
}

// NormalizeDomain strips the scheme and any trailing slash from the
// given domain string. It does not validate the result.
func NormalizeDomain(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "https://")
	raw = strings.TrimPrefix(raw, "http://")
	return strings.TrimRight(raw, "/")
}
