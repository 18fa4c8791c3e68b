package party

import (
	"time"

	"github.com/IR2816/Party-Gallery-Logic/domains"
)

// Creator identity is the (Service, Id) pair. The Favorited flag is an
// overlay computed from the local store, never authoritative from the
// remote API.
type Creator struct {
	Id      string `json:"id"`
	Service string `json:"service"`
	Name    string `json:"name"`

	Indexed time.Time `json:"indexed"`
	Updated time.Time `json:"updated"`

	Favorited bool `json:"favorited"`

	Avatar   string `json:"avatar,omitempty"`
	Bio      string `json:"bio,omitempty"`
	FanCount int    `json:"fan_count,omitempty"`
	Followed bool   `json:"followed,omitempty"`
}

type PostFile struct {
	Id   string `json:"id,omitempty"`
	Name string `json:"name"`
	Path string `json:"path"`
	Mime string `json:"mime,omitempty"`
	Size int    `json:"size,omitempty"`
}

// MediaUrl resolves the file's relative path against the media CDN of
// the given mirror domain.
func (f *PostFile) MediaUrl(domain string) string {
	return domains.MediaUrl(domain, f.Path)
}

// ThumbnailUrl resolves the file's relative path against the thumbnail
// CDN of the given mirror domain.
func (f *PostFile) ThumbnailUrl(domain string) string {
	return domains.ThumbnailUrl(domain, f.Path)
}

// Post ids are opaque strings, unique within a creator+service scope
// but treated as globally unique by the saved-posts store. The Saved
// flag is an overlay computed from the local store.
type Post struct {
	Id      string `json:"id"`
	User    string `json:"user"`
	Service string `json:"service"`
	Title   string `json:"title"`
	Content string `json:"content"`

	Embed      string `json:"embed,omitempty"`
	SharedFile string `json:"shared_file,omitempty"`

	Added     time.Time `json:"added"`
	Published time.Time `json:"published"`
	Edited    time.Time `json:"edited"`

	Attachments []PostFile `json:"attachments"`
	Files       []PostFile `json:"files"`
	Tags        []string   `json:"tags"`

	Saved bool `json:"saved"`
}

// Comment's PostId and Service are never populated by the wire format
// even though the API returns comments per post; the caller supplies
// them from its own context.
type Comment struct {
	Id        string    `json:"id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Published time.Time `json:"published"`

	PostId  string `json:"post_id,omitempty"`
	Service string `json:"service,omitempty"`
}

type DiscordServer struct {
	Id      string    `json:"id"`
	Name    string    `json:"name"`
	Indexed time.Time `json:"indexed"`
	Updated time.Time `json:"updated"`
}

type DiscordChannel struct {
	Id       string `json:"id"`
	ServerId string `json:"server_id"`
	Name     string `json:"name"`
	ParentId string `json:"parent_id,omitempty"`
	IsNsfw   bool   `json:"is_nsfw"`
	Type     int    `json:"type"`
	Position int    `json:"position"`

	PostCount int    `json:"post_count"`
	Emoji     string `json:"emoji,omitempty"`
}
