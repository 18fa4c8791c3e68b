// Package pglogic is the repository facade of the gallery client: it
// composes the resilient API client with the local persistence store
// and answers queries with favorited/saved overlays applied.
package pglogic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/IR2816/Party-Gallery-Logic/api/party"
	"github.com/IR2816/Party-Gallery-Logic/cache"
	"github.com/IR2816/Party-Gallery-Logic/configs"
	"github.com/IR2816/Party-Gallery-Logic/constants"
	"github.com/IR2816/Party-Gallery-Logic/domains"
	pgerrors "github.com/IR2816/Party-Gallery-Logic/errors"
	"github.com/IR2816/Party-Gallery-Logic/httpfuncs"
	"github.com/IR2816/Party-Gallery-Logic/logger"
	"github.com/IR2816/Party-Gallery-Logic/store"
)

type GalleryArgs struct {
	// Source selects the mirror family (constants.KEMONO or
	// constants.COOMER) used by every call on the Gallery.
	Source string

	Config *configs.Config

	// Db backs both the local store and the creator index cache. Use
	// cache.NewDb to open one.
	Db *cache.DbWrapper

	// Fetch and RequestHandler are test seams; they default to the
	// real httpfuncs implementations.
	Fetch          httpfuncs.FetchHandler
	RequestHandler httpfuncs.RequestHandler

	Context context.Context
}

func (args *GalleryArgs) ValidateArgs() {
	if args.Source == "" {
		args.Source = constants.KEMONO
	}
	if args.Source != constants.KEMONO && args.Source != constants.COOMER {
		panic(
			fmt.Errorf(
				"error %d: invalid api source, %q, in GalleryArgs",
				pgerrors.DEV_ERROR,
				args.Source,
			),
		)
	}
	if args.Config == nil {
		args.Config = &configs.Config{}
	}
	if args.Db == nil {
		panic(
			fmt.Errorf(
				"error %d: GalleryArgs requires an open cache db",
				pgerrors.DEV_ERROR,
			),
		)
	}
	if args.Fetch == nil {
		args.Fetch = httpfuncs.FetchWithFallback
	}
	if args.RequestHandler == nil {
		args.RequestHandler = httpfuncs.CallRequest
	}
	if args.Context == nil {
		args.Context = context.Background()
	}
}

type Gallery struct {
	source         string
	config         *configs.Config
	store          *store.Store
	index          *cache.CreatorIndex
	fetch          httpfuncs.FetchHandler
	requestHandler httpfuncs.RequestHandler
	ctx            context.Context

	lastDomainMu sync.Mutex
	lastDomain   string
}

func NewGallery(args *GalleryArgs) *Gallery {
	args.ValidateArgs()
	indexDir := args.Config.CacheDirPath
	if indexDir == "" {
		indexDir = filepath.Join(".", "party_gallery_cache")
	}
	return &Gallery{
		source:         args.Source,
		config:         args.Config,
		store:          store.NewStore(args.Db),
		index:          cache.NewCreatorIndex(args.Db, indexDir),
		fetch:          args.Fetch,
		requestHandler: args.RequestHandler,
		ctx:            args.Context,
	}
}

// Store exposes the local persistence facade for direct mutations
// (favoriting, saving posts, folders, settings).
func (g *Gallery) Store() *store.Store {
	return g.store
}

func (g *Gallery) clientArgs() *party.ClientArgs {
	return &party.ClientArgs{
		Source:         g.source,
		UserAgent:      g.config.UserAgent,
		ApiTimeout:     g.config.ApiTimeout,
		Fetch:          g.fetch,
		RequestHandler: g.requestHandler,
		Context:        g.ctx,
	}
}

func (g *Gallery) recordDomain(domain string) {
	if domain == "" {
		return
	}
	g.lastDomainMu.Lock()
	g.lastDomain = domain
	g.lastDomainMu.Unlock()
}

// LastDomain returns the mirror domain that most recently answered a
// request, falling back to the registry's primary domain before any
// request has succeeded. Callers use it to build media and thumbnail
// URLs against the mirror that is known to be up.
func (g *Gallery) LastDomain() string {
	g.lastDomainMu.Lock()
	defer g.lastDomainMu.Unlock()
	if g.lastDomain != "" {
		return g.lastDomain
	}
	return domains.PrimaryDomain(g.source)
}

func (g *Gallery) overlayFavorited(creators []*party.Creator) {
	favorites := g.store.GetFavoriteCreators()
	if len(favorites) == 0 {
		return
	}

	favSet := make(map[string]struct{}, len(favorites))
	for _, fav := range favorites {
		favSet[fav.Service+"/"+fav.Id] = struct{}{}
	}
	for _, creator := range creators {
		if _, ok := favSet[creator.Service+"/"+creator.Id]; ok {
			creator.Favorited = true
		}
	}
}

func (g *Gallery) overlaySaved(posts []*party.Post) {
	saved := g.store.GetSavedPosts()
	if len(saved) == 0 {
		return
	}

	savedSet := make(map[string]struct{}, len(saved))
	for _, post := range saved {
		savedSet[post.Id] = struct{}{}
	}
	for _, post := range posts {
		if _, ok := savedSet[post.Id]; ok {
			post.Saved = true
		}
	}
}

// creatorIndex returns the full creator listing, served from the 24h
// file cache when fresh and refetched otherwise.
func (g *Gallery) creatorIndex() ([]*party.Creator, error) {
	if body, err := g.index.Load(g.source); err == nil {
		var creators []*party.Creator
		if err := json.Unmarshal(body, &creators); err == nil {
			return creators, nil
		}
		logger.MainLogger.Errorf("Discarding corrupt creator index cache for %s", g.source)
	}

	creators, domain, err := party.GetCreators(g.clientArgs())
	if err != nil {
		return nil, err
	}
	g.recordDomain(domain)

	if raw, jsonErr := json.Marshal(creators); jsonErr == nil {
		if saveErr := g.index.Save(g.ctx, g.source, bytes.NewReader(raw)); saveErr != nil {
			logger.LogError(saveErr, false, logger.ERROR)
		}
	}
	return creators, nil
}

// deriveCreatorsFromSearch recovers a creator listing from a
// blank-query post search when the dedicated creators endpoint fails
// entirely. Lossy but better than an empty screen.
func (g *Gallery) deriveCreatorsFromSearch() []*party.Creator {
	posts, domain, err := party.SearchPosts(g.clientArgs(), "", 0, constants.POSTS_PER_PAGE)
	if err != nil {
		logger.LogError(err, false, logger.ERROR)
		return nil
	}
	g.recordDomain(domain)

	seen := make(map[string]struct{})
	var creators []*party.Creator
	for _, post := range posts {
		key := post.Service + "/" + post.User
		if _, ok := seen[key]; ok || post.User == "" {
			continue
		}
		seen[key] = struct{}{}
		creators = append(creators, &party.Creator{
			Id:      post.User,
			Service: post.Service,
			Name:    post.User,
		})
	}
	return creators
}

// ListCreators returns the creators of the configured mirror with the
// local favorited overlay applied, optionally filtered to one service
// (an empty service means all).
func (g *Gallery) ListCreators(service string) ([]*party.Creator, error) {
	creators, err := g.creatorIndex()
	if err != nil {
		creators = g.deriveCreatorsFromSearch()
		if creators == nil {
			return nil, err
		}
	}

	if service != "" {
		filtered := make([]*party.Creator, 0, len(creators))
		for _, creator := range creators {
			if creator.Service == service {
				filtered = append(filtered, creator)
			}
		}
		creators = filtered
	}

	g.overlayFavorited(creators)
	return creators, nil
}

// SearchCreators finds creators matching the query. A purely numeric
// query scoped to a specific service attempts a direct profile lookup
// first as that is cheap and authoritative; any failure falls back to
// the list-and-filter path, which partitions matches into exact-id,
// exact-name, and substring tiers and returns them concatenated in
// that priority order.
func (g *Gallery) SearchCreators(query, service string) ([]*party.Creator, error) {
	if service != "" && constants.NUMBER_REGEX.MatchString(query) {
		creator, domain, err := party.GetCreator(g.clientArgs(), service, query)
		if err == nil {
			g.recordDomain(domain)
			result := []*party.Creator{creator}
			g.overlayFavorited(result)
			return result, nil
		}
		logger.LogError(err, false, logger.ERROR)
	}

	creators, err := g.ListCreators(service)
	if err != nil {
		return nil, err
	}
	return filterCreators(creators, query), nil
}

// SearchCreatorsByName queries the external secondary search API for
// name matches, with the favorited overlay applied.
func (g *Gallery) SearchCreatorsByName(keyword string) ([]*party.Creator, error) {
	creators, err := party.SearchByName(g.clientArgs(), keyword)
	if err != nil {
		return nil, err
	}
	g.overlayFavorited(creators)
	return creators, nil
}

// ListCreatorPosts returns one page of a creator's posts with the
// saved overlay applied.
func (g *Gallery) ListCreatorPosts(service, creatorId string, offset int) ([]*party.Post, error) {
	posts, domain, err := party.GetCreatorPosts(g.clientArgs(), service, creatorId, offset)
	if err != nil {
		return nil, err
	}
	g.recordDomain(domain)
	g.overlaySaved(posts)
	return posts, nil
}

// GetCreator returns a single creator profile with the favorited
// overlay applied.
func (g *Gallery) GetCreator(service, creatorId string) (*party.Creator, error) {
	creator, domain, err := party.GetCreator(g.clientArgs(), service, creatorId)
	if err != nil {
		return nil, err
	}
	g.recordDomain(domain)
	result := []*party.Creator{creator}
	g.overlayFavorited(result)
	return creator, nil
}

// GetPost returns a single post with the saved overlay applied.
func (g *Gallery) GetPost(service, creatorId, postId string) (*party.Post, error) {
	post, domain, err := party.GetPost(g.clientArgs(), service, creatorId, postId)
	if err != nil {
		return nil, err
	}
	g.recordDomain(domain)
	post.Saved = g.store.IsPostSaved(post.Id)
	return post, nil
}

// SearchPosts runs the post search endpoint with the saved overlay
// applied.
func (g *Gallery) SearchPosts(query string, offset, limit int) ([]*party.Post, error) {
	posts, domain, err := party.SearchPosts(g.clientArgs(), query, offset, limit)
	if err != nil {
		return nil, err
	}
	g.recordDomain(domain)
	g.overlaySaved(posts)
	return posts, nil
}

// MediaUrl resolves a file path against the media CDN of the last
// known-good mirror domain.
func (g *Gallery) MediaUrl(filePath string) string {
	return domains.MediaUrl(g.LastDomain(), filePath)
}

// ThumbnailUrl resolves a file path against the thumbnail CDN of the
// last known-good mirror domain.
func (g *Gallery) ThumbnailUrl(filePath string) string {
	return domains.ThumbnailUrl(g.LastDomain(), filePath)
}

// GetComments returns the comments of a post with the post id and
// service injected from the call context; the wire format does not
// carry either. Comments are best-effort secondary data, so failures
// degrade to an empty list.
func (g *Gallery) GetComments(service, creatorId, postId string) []*party.Comment {
	comments := party.GetComments(g.clientArgs(), service, creatorId, postId)
	for _, comment := range comments {
		comment.PostId = postId
		comment.Service = service
	}
	return comments
}
