package store

import (
	"github.com/IR2816/Party-Gallery-Logic/api/party"
	"github.com/IR2816/Party-Gallery-Logic/constants"
)

func (s *Store) getFavoriteCreators() []*party.Creator {
	var creators []*party.Creator
	s.getCollection(constants.FAVORITE_CREATORS_KEY, &creators)
	return creators
}

// GetFavoriteCreators returns every locally favorited creator.
func (s *Store) GetFavoriteCreators() []*party.Creator {
	s.favoritesMu.Lock()
	defer s.favoritesMu.Unlock()
	return s.getFavoriteCreators()
}

// SaveFavoriteCreator adds or refreshes a favorite, deduplicating by
// the (id, service) identity pair. The write path is unconditionally an
// "add/confirm favorite" operation, so the stored copy always has
// Favorited forced to true regardless of the input value.
func (s *Store) SaveFavoriteCreator(creator *party.Creator) error {
	s.favoritesMu.Lock()
	defer s.favoritesMu.Unlock()

	stored := *creator
	stored.Favorited = true

	creators := s.getFavoriteCreators()
	for i, existing := range creators {
		if existing.Id == stored.Id && existing.Service == stored.Service {
			creators[i] = &stored
			return s.setCollection(constants.FAVORITE_CREATORS_KEY, creators)
		}
	}

	creators = append(creators, &stored)
	return s.setCollection(constants.FAVORITE_CREATORS_KEY, creators)
}

// RemoveFavoriteCreator removes the favorite matching (id, service).
// An empty service removes every entry with the given id across all
// services for backward compatibility with older stored data. When
// nothing matched, no write is made to avoid storage churn.
func (s *Store) RemoveFavoriteCreator(id, service string) error {
	s.favoritesMu.Lock()
	defer s.favoritesMu.Unlock()

	creators := s.getFavoriteCreators()
	remaining := make([]*party.Creator, 0, len(creators))
	for _, creator := range creators {
		if creator.Id == id && (service == "" || creator.Service == service) {
			continue
		}
		remaining = append(remaining, creator)
	}

	if len(remaining) == len(creators) {
		return nil
	}
	return s.setCollection(constants.FAVORITE_CREATORS_KEY, remaining)
}

// IsFavoriteCreator reports whether the (id, service) pair is favorited.
func (s *Store) IsFavoriteCreator(id, service string) bool {
	s.favoritesMu.Lock()
	defer s.favoritesMu.Unlock()

	for _, creator := range s.getFavoriteCreators() {
		if creator.Id == id && creator.Service == service {
			return true
		}
	}
	return false
}
