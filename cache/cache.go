// Package cache wraps a pebble key-value store used for the local
// persistence layer and the cached creator index.
package cache

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/IR2816/Party-Gallery-Logic/constants"
	"github.com/IR2816/Party-Gallery-Logic/logger"
	"github.com/cockroachdb/pebble"
)

type DbWrapper struct {
	Db *pebble.DB
}

func (db *DbWrapper) Close() error {
	return db.Db.Close()
}

func NewDb(path string) (*DbWrapper, error) {
	os.MkdirAll(path, constants.DEFAULT_PERMS)
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &DbWrapper{Db: db}, nil
}

func handleErr(err error, logMsg string) {
	logger.MainLogger.Errorf("%s: %s", logMsg, err)
}

func handleCloserErr(closer io.Closer) {
	err := closer.Close()
	if err == nil {
		return
	}
	handleErr(err, "Failed to close cache value")
}

func (db *DbWrapper) Get(key string) []byte {
	value, closer, err := db.Db.Get([]byte(key))
	if err != nil {
		if err == pebble.ErrNotFound {
			return nil
		}
		handleErr(err, "Failed to get cache value")
		return nil
	}
	defer handleCloserErr(closer)

	// the value is only valid until the closer is closed
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied
}

func (db *DbWrapper) Delete(key string) error {
	return db.Db.Delete([]byte(key), pebble.Sync)
}

func (db *DbWrapper) Set(key string, value []byte) error {
	return db.Db.Set([]byte(key), value, pebble.Sync)
}

func (db *DbWrapper) SetJson(key string, v any) error {
	value, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return db.Set(key, value)
}

func (db *DbWrapper) SetString(key string, value string) error {
	return db.Set(key, []byte(value))
}

func (db *DbWrapper) SetInt64(key string, value int64) error {
	return db.Set(key, ParseInt64(value))
}

func (db *DbWrapper) SetInt(key string, value int) error {
	return db.SetInt64(key, int64(value))
}

func (db *DbWrapper) SetTime(key string, value time.Time) error {
	return db.SetInt64(key, value.UTC().Unix())
}

func (db *DbWrapper) GetJson(key string, v any) error {
	return json.Unmarshal(db.Get(key), v)
}

func (db *DbWrapper) GetString(key string) string {
	return string(db.Get(key))
}

func (db *DbWrapper) GetInt64(key string) int64 {
	value := db.Get(key)
	if value == nil {
		return -1
	}
	return ParseBytesToInt64(value)
}

func (db *DbWrapper) GetInt(key string) int {
	return int(db.GetInt64(key))
}

func (db *DbWrapper) GetTime(key string) time.Time {
	value := db.Get(key)
	if value == nil {
		return time.Time{}
	}
	return ParseBytesToDateTime(value)
}
