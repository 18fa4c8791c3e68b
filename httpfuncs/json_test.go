package httpfuncs

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestLoadJsonFromBytes(t *testing.T) {
	var decoded any
	err := LoadJsonFromBytes(
		"https://kemono.su/api/v1/posts",
		[]byte(`{"posts": [{"id": "1"}]}`),
		&decoded,
	)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	obj, ok := decoded.(map[string]any)
	if !ok || obj["posts"] == nil {
		t.Errorf("Unexpected decoded value: %v", decoded)
	}
}

func TestLoadJsonFromBytesError(t *testing.T) {
	var decoded any
	err := LoadJsonFromBytes(
		"https://kemono.su/api/v1/posts",
		[]byte(`{broken`),
		&decoded,
	)
	if err == nil {
		t.Fatal("Expected an error for malformed JSON")
	}
	if !strings.Contains(err.Error(), "https://kemono.su/api/v1/posts") {
		t.Errorf("Expected the error to name the source url, got %q", err.Error())
	}
}

func TestLoadJsonFromResponse(t *testing.T) {
	parsedUrl, _ := url.Parse("https://se.kemono.su/api/creators")
	res := &http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(strings.NewReader(`{"data": [{"id": "1"}]}`)),
		Request:    &http.Request{URL: parsedUrl},
	}

	var decoded any
	if err := LoadJsonFromResponse(res, &decoded); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, ok := decoded.(map[string]any); !ok {
		t.Errorf("Unexpected decoded value: %v", decoded)
	}
}
