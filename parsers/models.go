package parsers

// Record is a raw JSON object as decoded from a response body.
type Record = map[string]any

// ShapeKind tags which historical response envelope a payload matched.
type ShapeKind int

const (
	SHAPE_NONE ShapeKind = iota
	SHAPE_BARE_LIST
	SHAPE_KEYED_LIST      // {"posts": [...]}, {"results": [...]}, {"data": [...]}
	SHAPE_WRAPPED_OBJECT  // {"post": {...}}
	SHAPE_OBJECT
)

// ParsedShape is the result of running the ordered shape matchers over
// a decoded response payload.
type ParsedShape struct {
	Kind ShapeKind

	// Key is the envelope key that matched for SHAPE_KEYED_LIST and
	// SHAPE_WRAPPED_OBJECT payloads.
	Key string

	Records []Record
	Record  Record
}

type shapeMatcher func(decoded any) (*ParsedShape, bool)
