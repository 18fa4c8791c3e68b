package party

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/IR2816/Party-Gallery-Logic/constants"
	pgerrors "github.com/IR2816/Party-Gallery-Logic/errors"
	"github.com/IR2816/Party-Gallery-Logic/httpfuncs"
)

func stubClientArgs(fetch httpfuncs.FetchHandler) *ClientArgs {
	return &ClientArgs{
		Source: constants.KEMONO,
		Fetch:  fetch,
	}
}

func stubFetch(body string) httpfuncs.FetchHandler {
	return func(reqArgs *httpfuncs.RequestArgs) (*httpfuncs.FetchResult, error) {
		return &httpfuncs.FetchResult{
			Body:       []byte(body),
			StatusCode: 200,
			Domain:     "kemono.su",
			Url:        "https://kemono.su/api/v1" + reqArgs.Path,
		}, nil
	}
}

func TestGetCreators(t *testing.T) {
	args := stubClientArgs(stubFetch(`[
		{"id": "1", "service": "patreon", "name": "one"},
		{"id": "2", "service": "fanbox", "name": "two"}
	]`))

	creators, domain, err := GetCreators(args)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if domain != "kemono.su" {
		t.Errorf("Expected the winning domain to be returned, got %q", domain)
	}
	if len(creators) != 2 || creators[0].Name != "one" {
		t.Errorf("Unexpected creators: %+v", creators)
	}
}

func TestRequestTimeouts(t *testing.T) {
	var timeouts []int
	fetch := func(reqArgs *httpfuncs.RequestArgs) (*httpfuncs.FetchResult, error) {
		timeouts = append(timeouts, reqArgs.Timeout)
		return stubFetch(`[]`)(reqArgs)
	}

	// the creator index is several MBs, so an unset timeout is raised
	if _, _, err := GetCreators(stubClientArgs(fetch)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if timeouts[0] != constants.INDEX_REQ_TIMEOUT {
		t.Errorf("Expected the index fetch to use the long timeout, got %d", timeouts[0])
	}

	// a configured timeout wins everywhere, including the index fetch
	args := stubClientArgs(fetch)
	args.ApiTimeout = 30
	if _, _, err := GetCreators(args); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if timeouts[1] != 30 {
		t.Errorf("Expected the configured timeout on the index fetch, got %d", timeouts[1])
	}

	args = stubClientArgs(fetch)
	args.ApiTimeout = 30
	if _, _, err := GetCreatorPosts(args, "patreon", "123", 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if timeouts[2] != 30 {
		t.Errorf("Expected the configured timeout on the posts fetch, got %d", timeouts[2])
	}
}

func TestGetCreatorsShapeMismatch(t *testing.T) {
	args := stubClientArgs(stubFetch(`{"unexpected": true}`))
	_, _, err := GetCreators(args)
	if err == nil {
		t.Fatal("Expected a shape mismatch error")
	}
}

func TestGetCreatorPosts(t *testing.T) {
	var requestedPath string
	var requestedParams map[string]string
	fetch := func(reqArgs *httpfuncs.RequestArgs) (*httpfuncs.FetchResult, error) {
		requestedPath = reqArgs.Path
		requestedParams = reqArgs.Params
		return stubFetch(`{"posts": [{"id": "p1"}, {"id": "p2"}]}`)(reqArgs)
	}

	posts, _, err := GetCreatorPosts(stubClientArgs(fetch), "patreon", "123", 50)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if requestedPath != "/patreon/user/123/posts" {
		t.Errorf("Unexpected request path: %q", requestedPath)
	}
	if requestedParams["o"] != "50" {
		t.Errorf("Expected the offset param, got %v", requestedParams)
	}
	if len(posts) != 2 {
		t.Errorf("Expected 2 posts, got %d", len(posts))
	}
}

func TestGetPostWrapped(t *testing.T) {
	// newer mirrors wrap the single-post payload as {"post": {...}}
	args := stubClientArgs(stubFetch(`{"post": {"id": "p1", "title": "wrapped"}, "props": {}}`))
	post, _, err := GetPost(args, "patreon", "123", "p1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if post.Id != "p1" || post.Title != "wrapped" {
		t.Errorf("Unexpected post: %+v", post)
	}

	args = stubClientArgs(stubFetch(`{"id": "p2", "title": "bare"}`))
	post, _, err = GetPost(args, "patreon", "123", "p2")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if post.Id != "p2" || post.Title != "bare" {
		t.Errorf("Unexpected post: %+v", post)
	}
}

func TestGetCreatorLinks(t *testing.T) {
	args := stubClientArgs(stubFetch(`[
		{"id": "1", "service": "patreon"},
		{"id": "1", "service": "fanbox"}
	]`))
	links, _, err := GetCreatorLinks(args, "patreon", "1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(links) != 2 {
		t.Errorf("Expected 2 links, got %d", len(links))
	}

	// the endpoint sometimes answers with a single link object
	args = stubClientArgs(stubFetch(`{"id": "1", "service": "fanbox"}`))
	links, _, err = GetCreatorLinks(args, "patreon", "1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(links) != 1 || links[0].Service != "fanbox" {
		t.Errorf("Unexpected single link: %+v", links)
	}
}

func TestSearchByName(t *testing.T) {
	var requestedUrl string
	args := &ClientArgs{
		Source: constants.KEMONO,
		RequestHandler: func(reqArgs *httpfuncs.RequestArgs) (*http.Response, error) {
			requestedUrl = reqArgs.Url
			if reqArgs.Params["keyword"] != "alpha" {
				t.Errorf("Expected the keyword param, got %v", reqArgs.Params)
			}
			body := `{"data": [{"id": "1", "service": "patreon", "name": "alpha"}]}`
			parsedUrl, _ := url.Parse(reqArgs.Url)
			return &http.Response{
				StatusCode: 200,
				Body:       io.NopCloser(strings.NewReader(body)),
				Request:    &http.Request{URL: parsedUrl},
			}, nil
		},
	}

	creators, err := SearchByName(args, "alpha")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if requestedUrl != constants.KEMONO_SEARCH_API_URL {
		t.Errorf("Expected the external search api url, got %q", requestedUrl)
	}
	if len(creators) != 1 || creators[0].Name != "alpha" {
		t.Errorf("Unexpected creators: %+v", creators)
	}
}

func TestGetCommentsHeaderVariants(t *testing.T) {
	// the first header variant yields an HTML-ish failure, the second
	// succeeds; the call must keep trying instead of giving up
	calls := 0
	fetch := func(reqArgs *httpfuncs.RequestArgs) (*httpfuncs.FetchResult, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("rejected accept header")
		}
		return stubFetch(`[{"id": "c1", "commenter_name": "someone"}]`)(reqArgs)
	}

	comments := GetComments(stubClientArgs(fetch), "patreon", "123", "p1")
	if calls != 2 {
		t.Errorf("Expected the second header variant to be tried, got %d calls", calls)
	}
	if len(comments) != 1 || comments[0].Username != "someone" {
		t.Errorf("Unexpected comments: %+v", comments)
	}
}

func TestGetCommentsDegradesToEmpty(t *testing.T) {
	fetch := func(reqArgs *httpfuncs.RequestArgs) (*httpfuncs.FetchResult, error) {
		return nil, errors.New("mirror down")
	}
	if comments := GetComments(stubClientArgs(fetch), "patreon", "123", "p1"); len(comments) != 0 {
		t.Errorf("Expected failures to degrade to no comments, got %+v", comments)
	}
}

func TestGetDiscordChannelsSorted(t *testing.T) {
	args := stubClientArgs(stubFetch(`[
		{"id": "ch2", "name": "later", "type": 0, "position": 5},
		{"id": "cat", "name": "category", "type": 11, "position": 0},
		{"id": "ch1", "name": "first", "type": 0, "position": 1}
	]`))

	channels, _, err := GetDiscordChannels(args, "srv1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(channels) != 3 {
		t.Fatalf("Expected 3 channels, got %d", len(channels))
	}
	if channels[0].Id != "cat" || channels[1].Id != "ch1" || channels[2].Id != "ch2" {
		t.Errorf("Expected channels sorted by position, got %+v", channels)
	}
	if channels[0].ServerId != "srv1" {
		t.Errorf("Expected the server id to be filled in, got %q", channels[0].ServerId)
	}

	postChannels := FilterPostChannels(channels)
	if len(postChannels) != 2 || postChannels[0].Id != "ch1" {
		t.Errorf("Expected the category node to be filtered out, got %+v", postChannels)
	}
}

func TestDiscordTemporarilyUnavailable(t *testing.T) {
	fetch := func(reqArgs *httpfuncs.RequestArgs) (*httpfuncs.FetchResult, error) {
		return nil, &httpfuncs.FallbackError{
			Source:   constants.KEMONO,
			Attempts: 1,
			Last: &httpfuncs.DomainDiagnostic{
				Domain:     "kemono.su",
				StatusCode: 503,
				Snippet:    "rebuilding the archive",
			},
		}
	}

	_, _, err := GetDiscordServers(stubClientArgs(fetch))
	if !errors.Is(err, pgerrors.ErrTemporarilyUnavailable) {
		t.Errorf("Expected a 503 to map to ErrTemporarilyUnavailable, got %v", err)
	}
}
