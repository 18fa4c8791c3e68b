package pglogic

import (
	"github.com/IR2816/Party-Gallery-Logic/api/party"
)

// ListDiscordServers returns the archived Discord servers of the
// configured mirror.
func (g *Gallery) ListDiscordServers() ([]*party.DiscordServer, error) {
	servers, domain, err := party.GetDiscordServers(g.clientArgs())
	if err != nil {
		return nil, err
	}
	g.recordDomain(domain)
	return servers, nil
}

// GetDiscordServer returns a single archived Discord server.
func (g *Gallery) GetDiscordServer(serverId string) (*party.DiscordServer, error) {
	server, domain, err := party.GetDiscordServer(g.clientArgs(), serverId)
	if err != nil {
		return nil, err
	}
	g.recordDomain(domain)
	return server, nil
}

// ListDiscordChannels returns the post-holding channels of a server in
// display order; category nodes are filtered out.
func (g *Gallery) ListDiscordChannels(serverId string) ([]*party.DiscordChannel, error) {
	channels, domain, err := party.GetDiscordChannels(g.clientArgs(), serverId)
	if err != nil {
		return nil, err
	}
	g.recordDomain(domain)
	return party.FilterPostChannels(channels), nil
}

// ListDiscordChannelPosts returns one page of posts from a channel
// with the saved overlay applied.
func (g *Gallery) ListDiscordChannelPosts(channelId string, offset int) ([]*party.Post, error) {
	posts, domain, err := party.GetDiscordChannelPosts(g.clientArgs(), channelId, offset)
	if err != nil {
		return nil, err
	}
	g.recordDomain(domain)
	g.overlaySaved(posts)
	return posts, nil
}
