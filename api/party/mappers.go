package party

import (
	"fmt"
	"time"

	"github.com/IR2816/Party-Gallery-Logic/parsers"
)

// swapped out in tests for a fixed clock
var nowFunc = time.Now

// Post timestamps default to "now" so that new or malformed posts
// surface first when display-ordered by publish time; creators are not
// time-ordered by default so theirs default to epoch zero instead.
func postTimeFallback() time.Time {
	return nowFunc().UTC()
}

var epochZero = time.Unix(0, 0).UTC()

// CreatorFromRecord maps a normalized record into a Creator. It is
// total: missing or mistyped fields degrade to defaults, never panic.
func CreatorFromRecord(rec parsers.Record) *Creator {
	indexed, _ := parsers.ParseTimestamp(rec["indexed"], epochZero)
	updated, _ := parsers.ParseTimestamp(rec["updated"], epochZero)
	return &Creator{
		Id:        parsers.GetString(rec, "id"),
		Service:   parsers.GetString(rec, "service"),
		Name:      parsers.GetString(rec, "name"),
		Indexed:   indexed,
		Updated:   updated,
		Favorited: parsers.CoerceBool(rec["favorited"]),
		Avatar:    parsers.GetString(rec, "avatar"),
		Bio:       parsers.GetString(rec, "bio"),
		FanCount:  parsers.GetInt(rec, "fav_count"),
		Followed:  parsers.CoerceBool(rec["followed"]),
	}
}

func postFileFromRecord(rec parsers.Record) PostFile {
	return PostFile{
		Id:   parsers.GetString(rec, "id"),
		Name: parsers.GetString(rec, "name"),
		Path: parsers.GetString(rec, "path"),
		Mime: parsers.GetStringOr(rec, "mime", parsers.GetString(rec, "type")),
		Size: parsers.GetInt(rec, "size"),
	}
}

func postFilesFromValue(value any) []PostFile {
	switch v := value.(type) {
	case []any:
		files := make([]PostFile, 0, len(v))
		for _, item := range v {
			if rec, ok := item.(parsers.Record); ok {
				files = append(files, postFileFromRecord(rec))
			}
		}
		return files
	case parsers.Record:
		// the API is inconsistent about returning "file" as a
		// singular object or a list; normalize to a list
		if parsers.GetString(v, "path") == "" {
			return nil
		}
		return []PostFile{postFileFromRecord(v)}
	default:
		return nil
	}
}

func tagsFromValue(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	tags := make([]string, 0, len(items))
	for _, item := range items {
		if tag, ok := item.(string); ok {
			tags = append(tags, tag)
		}
	}
	return tags
}

func embedUrlFromValue(value any) string {
	rec, ok := value.(parsers.Record)
	if !ok {
		return ""
	}
	return parsers.GetString(rec, "url")
}

// PostFromRecord maps a normalized record into a Post. An empty title
// gets a synthesized placeholder derived from the publish day.
func PostFromRecord(rec parsers.Record) *Post {
	added, _ := parsers.ParseTimestamp(rec["added"], postTimeFallback())
	published, _ := parsers.ParseTimestamp(rec["published"], postTimeFallback())
	edited, _ := parsers.ParseTimestamp(rec["edited"], postTimeFallback())

	title := parsers.GetString(rec, "title")
	if title == "" {
		title = fmt.Sprintf("Post from %s", published.Format("Jan 2, 2006"))
	}

	return &Post{
		Id:          parsers.GetString(rec, "id"),
		User:        parsers.GetString(rec, "user"),
		Service:     parsers.GetString(rec, "service"),
		Title:       title,
		Content:     parsers.GetString(rec, "content"),
		Embed:       embedUrlFromValue(rec["embed"]),
		SharedFile:  parsers.GetString(rec, "shared_file"),
		Added:       added,
		Published:   published,
		Edited:      edited,
		Attachments: postFilesFromValue(rec["attachments"]),
		Files:       postFilesFromValue(rec["file"]),
		Tags:        tagsFromValue(rec["tags"]),
	}
}

// CommentFromRecord maps a normalized record into a Comment. PostId and
// Service are left empty; the wire format does not carry them.
func CommentFromRecord(rec parsers.Record) *Comment {
	published, _ := parsers.ParseTimestamp(rec["published"], postTimeFallback())
	username := parsers.GetStringOr(rec, "commenter_name", parsers.GetString(rec, "username"))
	if username == "" {
		username = "Anonymous"
	}
	return &Comment{
		Id:        parsers.GetString(rec, "id"),
		Username:  username,
		Content:   parsers.GetString(rec, "content"),
		Published: published,
	}
}

func DiscordServerFromRecord(rec parsers.Record) *DiscordServer {
	indexed, _ := parsers.ParseTimestamp(rec["indexed"], epochZero)
	updated, _ := parsers.ParseTimestamp(rec["updated"], epochZero)
	return &DiscordServer{
		Id:      parsers.GetString(rec, "id"),
		Name:    parsers.GetString(rec, "name"),
		Indexed: indexed,
		Updated: updated,
	}
}

func DiscordChannelFromRecord(rec parsers.Record) *DiscordChannel {
	return &DiscordChannel{
		Id:        parsers.GetString(rec, "id"),
		ServerId:  parsers.GetString(rec, "server_id"),
		Name:      parsers.GetString(rec, "name"),
		ParentId:  parsers.GetString(rec, "parent_id"),
		IsNsfw:    parsers.CoerceBool(rec["is_nsfw"]),
		Type:      parsers.GetInt(rec, "type"),
		Position:  parsers.GetInt(rec, "position"),
		PostCount: parsers.GetInt(rec, "post_count"),
		Emoji:     parsers.GetString(rec, "emoji"),
	}
}
