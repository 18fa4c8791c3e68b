package party

import (
	"fmt"

	"github.com/IR2816/Party-Gallery-Logic/constants"
	pgerrors "github.com/IR2816/Party-Gallery-Logic/errors"
	"github.com/IR2816/Party-Gallery-Logic/httpfuncs"
	"github.com/IR2816/Party-Gallery-Logic/parsers"
)

func searchApiUrl(source string) string {
	switch source {
	case constants.KEMONO:
		return constants.KEMONO_SEARCH_API_URL
	case constants.COOMER:
		return constants.COOMER_SEARCH_API_URL
	default:
		panic(
			fmt.Errorf(
				"error %d: invalid api source, %q, in searchApiUrl",
				pgerrors.DEV_ERROR,
				source,
			),
		)
	}
}

// SearchByName queries the external secondary search API (a separate
// host from the mirrors) for creators matching the given keyword. Its
// payload comes wrapped as {"data": [...]} or {"results": [...]}.
func SearchByName(args *ClientArgs, keyword string) ([]*Creator, error) {
	args.ValidateArgs()
	res, err := args.RequestHandler(&httpfuncs.RequestArgs{
		Method:      "GET",
		Url:         searchApiUrl(args.Source),
		Timeout:     args.ApiTimeout,
		Params:      map[string]string{"keyword": keyword},
		Headers:     httpfuncs.ApiHeaders(),
		UserAgent:   args.UserAgent,
		Context:     args.Context,
		CheckStatus: true,
	})
	if err != nil {
		return nil, err
	}

	var decoded any
	if err := httpfuncs.LoadJsonFromResponse(res, &decoded); err != nil {
		return nil, err
	}
	records := parsers.NormalizeList(decoded)
	if records == nil {
		return nil, shapeMismatchErr(searchApiUrl(args.Source))
	}

	creators := make([]*Creator, 0, len(records))
	for _, rec := range records {
		creators = append(creators, CreatorFromRecord(rec))
	}
	return creators, nil
}
