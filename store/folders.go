package store

import (
	"strconv"
	"time"

	"github.com/IR2816/Party-Gallery-Logic/constants"
)

// Folder is a named collection of saved-post references. Membership has
// set semantics (enforced at add-time) while insertion order is kept.
type Folder struct {
	Id      string   `json:"id"`
	Name    string   `json:"name"`
	PostIds []string `json:"post_ids"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewFolder creates an empty folder with a time-based id.
func NewFolder(name string) *Folder {
	now := nowFunc().UTC()
	return &Folder{
		Id:        strconv.FormatInt(now.UnixNano(), 10),
		Name:      name,
		PostIds:   []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Store) getFolders() []*Folder {
	var folders []*Folder
	s.getCollection(constants.FOLDERS_KEY, &folders)
	return folders
}

func (s *Store) GetFolders() []*Folder {
	s.foldersMu.Lock()
	defer s.foldersMu.Unlock()
	return s.getFolders()
}

// SaveFolder adds or replaces a folder, deduplicating by id.
func (s *Store) SaveFolder(folder *Folder) error {
	s.foldersMu.Lock()
	defer s.foldersMu.Unlock()

	folders := s.getFolders()
	for i, existing := range folders {
		if existing.Id == folder.Id {
			folders[i] = folder
			return s.setCollection(constants.FOLDERS_KEY, folders)
		}
	}

	folders = append(folders, folder)
	return s.setCollection(constants.FOLDERS_KEY, folders)
}

// RemoveFolder removes the folder with the given id. No write is made
// when nothing matched.
func (s *Store) RemoveFolder(id string) error {
	s.foldersMu.Lock()
	defer s.foldersMu.Unlock()

	folders := s.getFolders()
	remaining := make([]*Folder, 0, len(folders))
	for _, folder := range folders {
		if folder.Id == id {
			continue
		}
		remaining = append(remaining, folder)
	}

	if len(remaining) == len(folders) {
		return nil
	}
	return s.setCollection(constants.FOLDERS_KEY, remaining)
}

// AddPostToFolder appends the post id to the folder's membership.
// Adding an id that is already a member is a no-op without a write;
// UpdatedAt only advances on an actual change.
func (s *Store) AddPostToFolder(folderId, postId string) error {
	s.foldersMu.Lock()
	defer s.foldersMu.Unlock()

	folders := s.getFolders()
	for _, folder := range folders {
		if folder.Id != folderId {
			continue
		}
		for _, id := range folder.PostIds {
			if id == postId {
				return nil
			}
		}
		folder.PostIds = append(folder.PostIds, postId)
		folder.UpdatedAt = nowFunc().UTC()
		return s.setCollection(constants.FOLDERS_KEY, folders)
	}
	return nil
}

// RemovePostFromFolder removes the post id from the folder's
// membership. UpdatedAt is bumped even when the post id was not a
// member; callers relying on UpdatedAt see every removal attempt.
func (s *Store) RemovePostFromFolder(folderId, postId string) error {
	s.foldersMu.Lock()
	defer s.foldersMu.Unlock()

	folders := s.getFolders()
	for _, folder := range folders {
		if folder.Id != folderId {
			continue
		}
		remaining := make([]string, 0, len(folder.PostIds))
		for _, id := range folder.PostIds {
			if id == postId {
				continue
			}
			remaining = append(remaining, id)
		}
		folder.PostIds = remaining
		folder.UpdatedAt = nowFunc().UTC()
		return s.setCollection(constants.FOLDERS_KEY, folders)
	}
	return nil
}
