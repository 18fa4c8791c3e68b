package cache

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/IR2816/Party-Gallery-Logic/constants"
	pgerrors "github.com/IR2816/Party-Gallery-Logic/errors"
	ctxio "github.com/jbenet/go-context/io"
)

// The full creator listing is several MBs, so the downloaded body is
// cached on disk with a sibling fetched-at timestamp in the KV store.
// Entries older than 24 hours are treated as stale and refetched.

type CreatorIndex struct {
	Db  *DbWrapper
	Dir string
}

func NewCreatorIndex(db *DbWrapper, dir string) *CreatorIndex {
	return &CreatorIndex{Db: db, Dir: dir}
}

func (ci *CreatorIndex) filePath(source string) string {
	return filepath.Join(ci.Dir, source+"_"+constants.CREATOR_INDEX_FILENAME)
}

func (ci *CreatorIndex) fetchedAtKey(source string) string {
	return constants.CREATOR_INDEX_FETCHED_AT_KEY + source
}

// Save streams the downloaded index body to disk and records the fetch
// time. The copy is cancellable through the given context.
func (ci *CreatorIndex) Save(ctx context.Context, source string, body io.Reader) error {
	os.MkdirAll(ci.Dir, constants.DEFAULT_PERMS)
	f, err := os.Create(ci.filePath(source))
	if err != nil {
		return fmt.Errorf(
			"error %d: failed to create creator index file, more info => %w",
			pgerrors.OS_ERROR,
			err,
		)
	}
	defer f.Close()

	bodyReader := ctxio.NewReader(ctx, body)
	if _, err := io.Copy(f, bodyReader); err != nil {
		os.Remove(ci.filePath(source))
		return fmt.Errorf(
			"error %d: failed to write creator index file, more info => %w",
			pgerrors.OS_ERROR,
			err,
		)
	}

	return ci.Db.SetTime(ci.fetchedAtKey(source), time.Now())
}

// FetchedAt returns the time the index for the given source was last
// saved, or the zero time if it never was.
func (ci *CreatorIndex) FetchedAt(source string) time.Time {
	fetchedAt := ci.Db.GetTime(ci.fetchedAtKey(source))
	if fetchedAt.Unix() <= 0 {
		return time.Time{}
	}
	return fetchedAt
}

// IsStale reports whether the cached index for the given source is
// missing or older than the 24-hour max age.
func (ci *CreatorIndex) IsStale(source string) bool {
	fetchedAt := ci.FetchedAt(source)
	if fetchedAt.IsZero() {
		return true
	}
	return time.Since(fetchedAt) > constants.CREATOR_INDEX_MAX_AGE*time.Second
}

// Load returns the cached index body for the given source, or
// pgerrors.ErrStaleIndex when the cache is missing or stale.
func (ci *CreatorIndex) Load(source string) ([]byte, error) {
	if ci.IsStale(source) {
		return nil, pgerrors.ErrStaleIndex
	}

	body, err := os.ReadFile(ci.filePath(source))
	if err != nil {
		return nil, pgerrors.ErrStaleIndex
	}
	return body, nil
}
