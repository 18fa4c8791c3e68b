// Package parsers reconciles the several response envelopes the mirror
// APIs have used over the years into one canonical record set, and
// provides the tolerant field parsing helpers the entity mappers use.
package parsers

import (
	"encoding/json"
	"fmt"
	"strings"

	pgerrors "github.com/IR2816/Party-Gallery-Logic/errors"
)

// The keys some endpoints wrap their list payloads in. Order matters:
// "posts" is the primary API, "results"/"data" come from the secondary
// search API and the Discord endpoints.
var listEnvelopeKeys = []string{"posts", "results", "data"}

func DecodeBody(body []byte) (any, error) {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf(
			"error %d: failed to decode response body due to %w",
			pgerrors.JSON_ERROR,
			err,
		)
	}
	return decoded, nil
}

func toRecords(items []any) []Record {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		if rec, ok := item.(Record); ok {
			records = append(records, rec)
		}
	}
	return records
}

func matchBareList(decoded any) (*ParsedShape, bool) {
	items, ok := decoded.([]any)
	if !ok {
		return nil, false
	}
	return &ParsedShape{
		Kind:    SHAPE_BARE_LIST,
		Records: toRecords(items),
	}, true
}

func matchKeyedList(key string) shapeMatcher {
	return func(decoded any) (*ParsedShape, bool) {
		obj, ok := decoded.(Record)
		if !ok {
			return nil, false
		}
		items, ok := obj[key].([]any)
		if !ok {
			return nil, false
		}
		return &ParsedShape{
			Kind:    SHAPE_KEYED_LIST,
			Key:     key,
			Records: toRecords(items),
		}, true
	}
}

func matchWrappedObject(key string) shapeMatcher {
	return func(decoded any) (*ParsedShape, bool) {
		obj, ok := decoded.(Record)
		if !ok {
			return nil, false
		}
		inner, ok := obj[key].(Record)
		if !ok {
			return nil, false
		}
		return &ParsedShape{
			Kind:   SHAPE_WRAPPED_OBJECT,
			Key:    key,
			Record: inner,
		}, true
	}
}

func matchObject(decoded any) (*ParsedShape, bool) {
	obj, ok := decoded.(Record)
	if !ok {
		return nil, false
	}
	return &ParsedShape{
		Kind:   SHAPE_OBJECT,
		Record: obj,
	}, true
}

func listMatchers() []shapeMatcher {
	matchers := []shapeMatcher{matchBareList}
	for _, key := range listEnvelopeKeys {
		matchers = append(matchers, matchKeyedList(key))
	}
	return matchers
}

// NormalizeList extracts the canonical record set out of a decoded list
// payload, whichever envelope it came wrapped in. Returns nil if the
// payload does not match any known list shape.
func NormalizeList(decoded any) []Record {
	for _, matcher := range listMatchers() {
		if shape, ok := matcher(decoded); ok {
			return shape.Records
		}
	}
	return nil
}

// NormalizeObject extracts a single record from a decoded payload,
// unwrapping the {"post": {...}} envelope when present. Returns nil if
// the payload is not an object.
func NormalizeObject(decoded any) Record {
	matchers := []shapeMatcher{matchWrappedObject("post"), matchObject}
	for _, matcher := range matchers {
		if shape, ok := matcher(decoded); ok {
			return shape.Record
		}
	}
	return nil
}

// ExtractEmbeddedJson scans the given text for the first bracket-delimited
// JSON array or object substring and decodes it. Some endpoints return
// comment data embedded in a non-JSON-content-typed response.
func ExtractEmbeddedJson(text string) (any, bool) {
	arrayIdx := strings.IndexByte(text, '[')
	objectIdx := strings.IndexByte(text, '{')

	// whichever bracket appears first in the text is tried first
	candidates := []int{arrayIdx, objectIdx}
	if objectIdx != -1 && (arrayIdx == -1 || objectIdx < arrayIdx) {
		candidates = []int{objectIdx, arrayIdx}
	}

	for _, idx := range candidates {
		if idx == -1 {
			continue
		}

		// Decode just decodes the first JSON value and ignores
		// whatever trails it
		decoder := json.NewDecoder(strings.NewReader(text[idx:]))
		var decoded any
		if err := decoder.Decode(&decoded); err != nil {
			continue
		}
		return decoded, true
	}
	return nil, false
}

// NormalizeListBestEffort decodes the body and normalizes it, falling
// back to embedded-JSON extraction if the body is not valid JSON.
// Failures degrade to an empty record set instead of an error as this
// path is only used for secondary endpoints such as comments.
func NormalizeListBestEffort(body []byte) []Record {
	decoded, err := DecodeBody(body)
	if err != nil {
		embedded, ok := ExtractEmbeddedJson(string(body))
		if !ok {
			return nil
		}
		decoded = embedded
	}

	if records := NormalizeList(decoded); records != nil {
		return records
	}
	if rec := NormalizeObject(decoded); rec != nil {
		return []Record{rec}
	}
	return nil
}
