package party

import (
	"fmt"
	"strconv"

	"github.com/IR2816/Party-Gallery-Logic/constants"
	pgerrors "github.com/IR2816/Party-Gallery-Logic/errors"
	"github.com/IR2816/Party-Gallery-Logic/httpfuncs"
	"github.com/IR2816/Party-Gallery-Logic/logger"
	"github.com/IR2816/Party-Gallery-Logic/parsers"
)

func shapeMismatchErr(url string) error {
	return fmt.Errorf(
		"error %d: response from %s did not match any expected payload shape",
		pgerrors.RESPONSE_ERROR,
		url,
	)
}

// decodeFetchBody decodes a fallback fetch result, going through the
// shared JSON loader so DEBUG_MODE response capture sees every payload.
func decodeFetchBody(res *httpfuncs.FetchResult) (any, error) {
	var decoded any
	if err := httpfuncs.LoadJsonFromBytes(res.Url, res.Body, &decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}

// GetCreators fetches the full creator listing for the api source.
// The endpoint ends in .txt but returns a JSON array regardless.
//
// The winning mirror domain is returned alongside the creators so the
// caller can keep it for building media URLs.
func GetCreators(args *ClientArgs) ([]*Creator, string, error) {
	args.ValidateArgs()
	reqArgs := args.newReqArgs("/creators.txt", nil, nil)
	if reqArgs.Timeout == 0 {
		// the full listing is several MBs and the mirrors are slow
		reqArgs.Timeout = constants.INDEX_REQ_TIMEOUT
	}
	res, err := args.Fetch(reqArgs)
	if err != nil {
		return nil, "", err
	}

	decoded, err := decodeFetchBody(res)
	if err != nil {
		return nil, "", err
	}
	records := parsers.NormalizeList(decoded)
	if records == nil {
		return nil, "", shapeMismatchErr(res.Url)
	}

	creators := make([]*Creator, 0, len(records))
	for _, rec := range records {
		creators = append(creators, CreatorFromRecord(rec))
	}
	return creators, res.Domain, nil
}

// GetCreator fetches a single creator profile.
func GetCreator(args *ClientArgs, service, creatorId string) (*Creator, string, error) {
	args.ValidateArgs()
	path := fmt.Sprintf("/%s/user/%s/profile", service, creatorId)
	res, err := args.Fetch(args.newReqArgs(path, nil, nil))
	if err != nil {
		return nil, "", err
	}

	decoded, err := decodeFetchBody(res)
	if err != nil {
		return nil, "", err
	}
	rec := parsers.NormalizeObject(decoded)
	if rec == nil {
		return nil, "", shapeMismatchErr(res.Url)
	}
	return CreatorFromRecord(rec), res.Domain, nil
}

// GetCreatorPosts fetches one page of a creator's posts.
func GetCreatorPosts(args *ClientArgs, service, creatorId string, offset int) ([]*Post, string, error) {
	args.ValidateArgs()
	path := fmt.Sprintf("/%s/user/%s/posts", service, creatorId)
	params := map[string]string{"o": strconv.Itoa(offset)}
	res, err := args.Fetch(args.newReqArgs(path, params, nil))
	if err != nil {
		return nil, "", err
	}
	posts, err := postsFromBody(res)
	return posts, res.Domain, err
}

// GetCreatorLinks fetches the linked-accounts list of a creator. The
// endpoint returns either a list or a single link object.
func GetCreatorLinks(args *ClientArgs, service, creatorId string) ([]*Creator, string, error) {
	args.ValidateArgs()
	path := fmt.Sprintf("/%s/user/%s/links", service, creatorId)
	res, err := args.Fetch(args.newReqArgs(path, nil, nil))
	if err != nil {
		return nil, "", err
	}

	decoded, err := decodeFetchBody(res)
	if err != nil {
		return nil, "", err
	}
	records := parsers.NormalizeList(decoded)
	if records == nil {
		if rec := parsers.NormalizeObject(decoded); rec != nil {
			records = []parsers.Record{rec}
		} else {
			return nil, "", shapeMismatchErr(res.Url)
		}
	}

	links := make([]*Creator, 0, len(records))
	for _, rec := range records {
		links = append(links, CreatorFromRecord(rec))
	}
	return links, res.Domain, nil
}

// GetPost fetches a single post, which may arrive wrapped as {"post": {...}}.
func GetPost(args *ClientArgs, service, creatorId, postId string) (*Post, string, error) {
	args.ValidateArgs()
	path := fmt.Sprintf("/%s/user/%s/post/%s", service, creatorId, postId)
	res, err := args.Fetch(args.newReqArgs(path, nil, nil))
	if err != nil {
		return nil, "", err
	}

	decoded, err := decodeFetchBody(res)
	if err != nil {
		return nil, "", err
	}
	rec := parsers.NormalizeObject(decoded)
	if rec == nil {
		return nil, "", shapeMismatchErr(res.Url)
	}
	return PostFromRecord(rec), res.Domain, nil
}

// SearchPosts runs the post search endpoint with the given query.
func SearchPosts(args *ClientArgs, query string, offset, limit int) ([]*Post, string, error) {
	args.ValidateArgs()
	params := map[string]string{
		"q": query,
		"o": strconv.Itoa(offset),
	}
	if limit > 0 {
		params["l"] = strconv.Itoa(limit)
	}
	res, err := args.Fetch(args.newReqArgs("/posts", params, nil))
	if err != nil {
		return nil, "", err
	}
	posts, err := postsFromBody(res)
	return posts, res.Domain, err
}

func postsFromBody(res *httpfuncs.FetchResult) ([]*Post, error) {
	decoded, err := decodeFetchBody(res)
	if err != nil {
		return nil, err
	}
	records := parsers.NormalizeList(decoded)
	if records == nil {
		return nil, shapeMismatchErr(res.Url)
	}

	posts := make([]*Post, 0, len(records))
	for _, rec := range records {
		posts = append(posts, PostFromRecord(rec))
	}
	return posts, nil
}

// The comments endpoint rejects the usual browser Accept header on some
// mirrors; these variants are tried in sequence until one yields data.
var commentHeaderVariants = []map[string]string{
	{"Accept": "text/css"},
	{"Accept": "application/json, text/plain, */*"},
	nil,
}

// GetComments fetches the comments of a post. Comments are secondary
// data: any fetch or parse failure at any stage degrades to an empty
// list instead of an error.
func GetComments(args *ClientArgs, service, creatorId, postId string) []*Comment {
	args.ValidateArgs()
	path := fmt.Sprintf("/%s/user/%s/post/%s/comments", service, creatorId, postId)

	for _, headers := range commentHeaderVariants {
		res, err := args.Fetch(args.newReqArgs(path, nil, headers))
		if err != nil {
			logger.MainLogger.Debugf(
				"comments fetch for %s/%s/%s failed: %v",
				service, creatorId, postId, err,
			)
			continue
		}

		records := parsers.NormalizeListBestEffort(res.Body)
		if len(records) == 0 {
			continue
		}

		comments := make([]*Comment, 0, len(records))
		for _, rec := range records {
			comments = append(comments, CommentFromRecord(rec))
		}
		return comments
	}
	return nil
}
