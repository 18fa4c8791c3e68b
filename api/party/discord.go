package party

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/IR2816/Party-Gallery-Logic/constants"
	pgerrors "github.com/IR2816/Party-Gallery-Logic/errors"
	"github.com/IR2816/Party-Gallery-Logic/httpfuncs"
	"github.com/IR2816/Party-Gallery-Logic/parsers"
)

// The Discord endpoints answer with an explicit 503 while the archive
// is being rebuilt. That is a user-facing soft failure, distinct from
// the generic fallback error.
func wrapDiscordErr(err error) error {
	var fbErr *httpfuncs.FallbackError
	if errors.As(err, &fbErr) && fbErr.Last != nil && fbErr.Last.StatusCode == 503 {
		return fmt.Errorf("%w, more info => %s", pgerrors.ErrTemporarilyUnavailable, fbErr.Last.String())
	}
	return err
}

// GetDiscordServers fetches the list of archived Discord servers.
func GetDiscordServers(args *ClientArgs) ([]*DiscordServer, string, error) {
	args.ValidateArgs()
	res, err := args.Fetch(args.newReqArgs("/discord/server", nil, nil))
	if err != nil {
		return nil, "", wrapDiscordErr(err)
	}

	decoded, err := decodeFetchBody(res)
	if err != nil {
		return nil, "", err
	}
	records := parsers.NormalizeList(decoded)
	if records == nil {
		return nil, "", shapeMismatchErr(res.Url)
	}

	servers := make([]*DiscordServer, 0, len(records))
	for _, rec := range records {
		servers = append(servers, DiscordServerFromRecord(rec))
	}
	return servers, res.Domain, nil
}

// GetDiscordServer fetches a single archived Discord server.
func GetDiscordServer(args *ClientArgs, serverId string) (*DiscordServer, string, error) {
	args.ValidateArgs()
	path := "/discord/server/" + serverId
	res, err := args.Fetch(args.newReqArgs(path, nil, nil))
	if err != nil {
		return nil, "", wrapDiscordErr(err)
	}

	decoded, err := decodeFetchBody(res)
	if err != nil {
		return nil, "", err
	}
	rec := parsers.NormalizeObject(decoded)
	if rec == nil {
		return nil, "", shapeMismatchErr(res.Url)
	}
	return DiscordServerFromRecord(rec), res.Domain, nil
}

// GetDiscordChannels looks up the channels of a server, sorted
// ascending by their position sort key.
func GetDiscordChannels(args *ClientArgs, serverId string) ([]*DiscordChannel, string, error) {
	args.ValidateArgs()
	path := "/discord/channel/lookup/" + serverId
	res, err := args.Fetch(args.newReqArgs(path, nil, nil))
	if err != nil {
		return nil, "", wrapDiscordErr(err)
	}

	decoded, err := decodeFetchBody(res)
	if err != nil {
		return nil, "", err
	}
	records := parsers.NormalizeList(decoded)
	if records == nil {
		return nil, "", shapeMismatchErr(res.Url)
	}

	channels := make([]*DiscordChannel, 0, len(records))
	for _, rec := range records {
		channel := DiscordChannelFromRecord(rec)
		if channel.ServerId == "" {
			channel.ServerId = serverId
		}
		channels = append(channels, channel)
	}
	sort.SliceStable(channels, func(i, j int) bool {
		return channels[i].Position < channels[j].Position
	})
	return channels, res.Domain, nil
}

// FilterPostChannels drops category/container nodes, leaving only the
// channels that can actually hold posts.
func FilterPostChannels(channels []*DiscordChannel) []*DiscordChannel {
	postChannels := make([]*DiscordChannel, 0, len(channels))
	for _, channel := range channels {
		if channel.Type != constants.DISCORD_CATEGORY_CHANNEL_TYPE {
			postChannels = append(postChannels, channel)
		}
	}
	return postChannels
}

// GetDiscordChannelPosts fetches one page of posts from a channel.
func GetDiscordChannelPosts(args *ClientArgs, channelId string, offset int) ([]*Post, string, error) {
	args.ValidateArgs()
	path := "/discord/channel/" + channelId
	params := map[string]string{"offset": strconv.Itoa(offset)}
	res, err := args.Fetch(args.newReqArgs(path, params, nil))
	if err != nil {
		return nil, "", wrapDiscordErr(err)
	}
	posts, err := postsFromBody(res)
	return posts, res.Domain, err
}
