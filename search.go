package pglogic

import (
	"strings"

	"github.com/IR2816/Party-Gallery-Logic/api/party"
)

// filterCreators partitions the creators into exact-id, exact-name and
// case-insensitive substring matches and returns the tiers
// concatenated in that priority order. A creator appears at most once,
// in its highest tier.
func filterCreators(creators []*party.Creator, query string) []*party.Creator {
	if query == "" {
		return creators
	}

	lowered := strings.ToLower(query)
	var exactId, exactName, partial []*party.Creator
	for _, creator := range creators {
		switch {
		case creator.Id == query:
			exactId = append(exactId, creator)
		case strings.EqualFold(creator.Name, query):
			exactName = append(exactName, creator)
		case strings.Contains(strings.ToLower(creator.Id), lowered),
			strings.Contains(strings.ToLower(creator.Name), lowered),
			strings.Contains(strings.ToLower(creator.Service), lowered):
			partial = append(partial, creator)
		}
	}

	results := make([]*party.Creator, 0, len(exactId)+len(exactName)+len(partial))
	results = append(results, exactId...)
	results = append(results, exactName...)
	results = append(results, partial...)
	return results
}
