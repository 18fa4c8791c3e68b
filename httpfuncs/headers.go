package httpfuncs

// The mirrors reject requests that look like bare API clients, so both
// header sets below mimic a desktop browser's navigation metadata.
// These are fixed contracts that the fetch logic depends on and are not
// meant to be configurable by end users.

// ApiHeaders returns the header set required for API endpoint requests.
func ApiHeaders() map[string]string {
	return map[string]string{
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7",
		"Accept-Language":           "en-US,en;q=0.9",
		"Sec-Fetch-Dest":            "document",
		"Sec-Fetch-Mode":            "navigate",
		"Sec-Fetch-Site":            "none",
		"Sec-Fetch-User":            "?1",
		"Upgrade-Insecure-Requests": "1",
		"User-Agent":                DEFAULT_USER_AGENT,
	}
}

// MediaHeaders returns the header set required when requesting media or
// thumbnail files from the CDN subdomains. The referer should be the
// page URL the file was linked from.
func MediaHeaders(referer string) map[string]string {
	headers := map[string]string{
		"Accept":          "image/avif,image/webp,image/apng,image/svg+xml,image/*,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.9",
		"Sec-Fetch-Dest":  "image",
		"Sec-Fetch-Mode":  "no-cors",
		"Sec-Fetch-Site":  "same-site",
		"User-Agent":      DEFAULT_USER_AGENT,
	}
	if referer != "" {
		headers["Referer"] = referer
	}
	return headers
}

// MergeHeaders overlays extra on top of base, with extra winning on
// conflicts. Neither argument is mutated.
func MergeHeaders(base, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(extra))
	for key, value := range base {
		merged[key] = value
	}
	for key, value := range extra {
		merged[key] = value
	}
	return merged
}
