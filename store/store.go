// Package store is the local persistence facade: favorited creators,
// saved posts, folders, and app settings serialized as JSON blobs under
// fixed keys in the cache's key-value store.
package store

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/IR2816/Party-Gallery-Logic/cache"
	"github.com/IR2816/Party-Gallery-Logic/logger"
)

// swapped out in tests for a fixed clock
var nowFunc = time.Now

type Store struct {
	db *cache.DbWrapper

	// One mutex per collection key so that each read-modify-write is
	// atomic at single-key granularity for in-process callers.
	favoritesMu sync.Mutex
	postsMu     sync.Mutex
	foldersMu   sync.Mutex
	settingsMu  sync.Mutex
}

func NewStore(db *cache.DbWrapper) *Store {
	return &Store{db: db}
}

// getCollection unmarshals the stored JSON under key into v. Corrupt
// or missing stored JSON is treated as "empty", never as a fatal error.
func (s *Store) getCollection(key string, v any) {
	raw := s.db.Get(key)
	if raw == nil {
		return
	}
	if err := json.Unmarshal(raw, v); err != nil {
		logger.MainLogger.Errorf(
			"Discarding corrupt stored JSON under key %q: %s",
			key,
			err,
		)
	}
}

func (s *Store) setCollection(key string, v any) error {
	return s.db.SetJson(key, v)
}
