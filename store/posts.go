package store

import (
	"github.com/IR2816/Party-Gallery-Logic/api/party"
	"github.com/IR2816/Party-Gallery-Logic/constants"
)

func (s *Store) getSavedPosts() []*party.Post {
	var posts []*party.Post
	s.getCollection(constants.SAVED_POSTS_KEY, &posts)
	return posts
}

// GetSavedPosts returns the saved posts, most recently saved first.
func (s *Store) GetSavedPosts() []*party.Post {
	s.postsMu.Lock()
	defer s.postsMu.Unlock()
	return s.getSavedPosts()
}

// SavePost stores the post at the front of the saved list. Saving a
// post that is already saved removes the old entry first, so a repeat
// save moves it to the front without duplication.
func (s *Store) SavePost(post *party.Post) error {
	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	stored := *post
	stored.Saved = true

	posts := s.getSavedPosts()
	remaining := make([]*party.Post, 0, len(posts)+1)
	remaining = append(remaining, &stored)
	for _, existing := range posts {
		if existing.Id == stored.Id {
			continue
		}
		remaining = append(remaining, existing)
	}
	return s.setCollection(constants.SAVED_POSTS_KEY, remaining)
}

// RemoveSavedPost removes the saved post with the given id. No write is
// made when nothing matched.
func (s *Store) RemoveSavedPost(id string) error {
	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	posts := s.getSavedPosts()
	remaining := make([]*party.Post, 0, len(posts))
	for _, post := range posts {
		if post.Id == id {
			continue
		}
		remaining = append(remaining, post)
	}

	if len(remaining) == len(posts) {
		return nil
	}
	return s.setCollection(constants.SAVED_POSTS_KEY, remaining)
}

// IsPostSaved reports whether a post with the given id is saved.
func (s *Store) IsPostSaved(id string) bool {
	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	for _, post := range s.getSavedPosts() {
		if post.Id == id {
			return true
		}
	}
	return false
}
