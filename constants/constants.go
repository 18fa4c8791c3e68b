package constants

import (
	"regexp"
)

const (
	DEBUG_MODE    = false // Will save a copy of all JSON responses from the API
	DEFAULT_PERMS = 0755  // Owner: rwx, Group: rx, Others: rx
	VERSION       = "0.3.1"

	DEFAULT_API_TIMEOUT = 15 // in seconds
	INDEX_REQ_TIMEOUT   = 60 // creators.txt is several MBs and the mirrors are slow

	KEMONO       = "kemono"
	KEMONO_TITLE = "Kemono"
	COOMER       = "coomer"
	COOMER_TITLE = "Coomer"

	API_PATH       = "/api/v1"
	MEDIA_SUBDOMAIN     = "n4"
	THUMBNAIL_SUBDOMAIN = "img"
	THUMBNAIL_PATH      = "/thumbnail/data"

	KEMONO_SEARCH_API_URL = "https://se.kemono.su/api/creators"
	COOMER_SEARCH_API_URL = "https://se.coomer.su/api/creators"

	POSTS_PER_PAGE   = 50
	DISCORD_PER_PAGE = 150

	// Discord channel type code used by the API for
	// category/container nodes that cannot hold posts
	DISCORD_CATEGORY_CHANNEL_TYPE = 11

	CREATOR_INDEX_FILENAME  = "creators_index.txt"
	CREATOR_INDEX_MAX_AGE   = 24 * 60 * 60 // in seconds
	CREATOR_INDEX_FETCHED_AT_KEY = "creator_index_fetched_at|"

	FAVORITE_CREATORS_KEY = "favorite_creators"
	SAVED_POSTS_KEY       = "saved_posts"
	FOLDERS_KEY           = "folders"
	SETTINGS_KEY          = "settings"

	ENV_FILE_NAME = ".env"
	ENV_USER_AGENT_KEY     = "PARTY_GALLERY_USER_AGENT"
	ENV_KEMONO_DOMAINS_KEY = "PARTY_GALLERY_KEMONO_DOMAINS"
	ENV_COOMER_DOMAINS_KEY = "PARTY_GALLERY_COOMER_DOMAINS"
)

// Although the variables below are not
// constants, they are not supposed to be changed
var (
	NUMBER_REGEX = regexp.MustCompile(`^\d+$`)

	KEMONO_DOMAINS = []string{"kemono.su", "kemono.cr", "kemono.party"}
	COOMER_DOMAINS = []string{"coomer.su", "coomer.st", "coomer.party"}

	// Default values for the settings map stored by the store package
	DEFAULT_SETTINGS = map[string]string{
		"theme":           "system",
		"grid_columns":    "2",
		"autoplay_videos": "false",
		"default_service": "all",
		"nsfw_filter":     "false",
		"show_thumbnails": "true",
		"api_source":      KEMONO,
	}
)
