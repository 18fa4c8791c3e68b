package store

import (
	"testing"
	"time"

	"github.com/IR2816/Party-Gallery-Logic/api/party"
	"github.com/IR2816/Party-Gallery-Logic/cache"
	"github.com/IR2816/Party-Gallery-Logic/constants"
)

func newTestStore(t *testing.T) *Store {
	db, err := cache.NewDb(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewStore(db)
}

func withFixedClock(t *testing.T, fixed time.Time) {
	original := nowFunc
	nowFunc = func() time.Time { return fixed }
	t.Cleanup(func() { nowFunc = original })
}

func TestFavoriteCreators(t *testing.T) {
	s := newTestStore(t)

	creator := &party.Creator{Id: "123", Service: "patreon", Name: "one"}
	if err := s.SaveFavoriteCreator(creator); err != nil {
		t.Fatalf("Failed to save favorite: %v", err)
	}

	// the stored copy must have Favorited forced on, and the caller's
	// copy must be left alone
	if creator.Favorited {
		t.Errorf("Expected the input creator to be unmodified")
	}
	favorites := s.GetFavoriteCreators()
	if len(favorites) != 1 || !favorites[0].Favorited {
		t.Fatalf("Unexpected favorites: %+v", favorites)
	}

	// saving the same (id, service) again must not duplicate
	if err := s.SaveFavoriteCreator(&party.Creator{Id: "123", Service: "patreon", Name: "renamed"}); err != nil {
		t.Fatalf("Failed to re-save favorite: %v", err)
	}
	favorites = s.GetFavoriteCreators()
	if len(favorites) != 1 {
		t.Fatalf("Expected the re-save to deduplicate, got %d entries", len(favorites))
	}
	if favorites[0].Name != "renamed" {
		t.Errorf("Expected the re-save to refresh the stored copy, got %q", favorites[0].Name)
	}

	// the same id under a different service is a distinct favorite
	s.SaveFavoriteCreator(&party.Creator{Id: "123", Service: "fanbox", Name: "other"})
	if len(s.GetFavoriteCreators()) != 2 {
		t.Errorf("Expected (id, service) identity, got %+v", s.GetFavoriteCreators())
	}

	if !s.IsFavoriteCreator("123", "patreon") {
		t.Errorf("Expected the creator to be favorited")
	}
	if s.IsFavoriteCreator("123", "gumroad") {
		t.Errorf("Expected a different service to not be favorited")
	}
}

func TestRemoveFavoriteCreator(t *testing.T) {
	s := newTestStore(t)
	s.SaveFavoriteCreator(&party.Creator{Id: "123", Service: "patreon"})
	s.SaveFavoriteCreator(&party.Creator{Id: "123", Service: "fanbox"})
	s.SaveFavoriteCreator(&party.Creator{Id: "456", Service: "patreon"})

	// service-scoped removal only touches the matching pair
	if err := s.RemoveFavoriteCreator("123", "patreon"); err != nil {
		t.Fatalf("Failed to remove favorite: %v", err)
	}
	if s.IsFavoriteCreator("123", "patreon") {
		t.Errorf("Expected the favorite to be removed")
	}
	if !s.IsFavoriteCreator("123", "fanbox") {
		t.Errorf("Expected the other service entry to survive")
	}

	// removing a non-existent favorite is a no-op
	if err := s.RemoveFavoriteCreator("999", "patreon"); err != nil {
		t.Errorf("Expected a no-match removal to be a no-op, got %v", err)
	}

	// an empty service removes the id across all services
	s.SaveFavoriteCreator(&party.Creator{Id: "123", Service: "patreon"})
	if err := s.RemoveFavoriteCreator("123", ""); err != nil {
		t.Fatalf("Failed to wide-remove favorite: %v", err)
	}
	if s.IsFavoriteCreator("123", "patreon") || s.IsFavoriteCreator("123", "fanbox") {
		t.Errorf("Expected the wide removal to clear every service")
	}
	if !s.IsFavoriteCreator("456", "patreon") {
		t.Errorf("Expected unrelated favorites to survive")
	}
}

func TestSavedPosts(t *testing.T) {
	s := newTestStore(t)

	s.SavePost(&party.Post{Id: "p1", Title: "first"})
	s.SavePost(&party.Post{Id: "p2", Title: "second"})

	// most recently saved first
	posts := s.GetSavedPosts()
	if len(posts) != 2 || posts[0].Id != "p2" || posts[1].Id != "p1" {
		t.Fatalf("Unexpected saved order: %+v", posts)
	}
	if !posts[0].Saved {
		t.Errorf("Expected the stored post to have Saved forced on")
	}

	// a repeat save moves the post to the front without duplicating
	s.SavePost(&party.Post{Id: "p1", Title: "first again"})
	posts = s.GetSavedPosts()
	if len(posts) != 2 || posts[0].Id != "p1" {
		t.Fatalf("Expected the repeat save to move p1 to the front, got %+v", posts)
	}

	if !s.IsPostSaved("p1") {
		t.Errorf("Expected p1 to be saved")
	}

	s.RemoveSavedPost("p1")
	if s.IsPostSaved("p1") {
		t.Errorf("Expected p1 to be removed")
	}
	if err := s.RemoveSavedPost("missing"); err != nil {
		t.Errorf("Expected a no-match removal to be a no-op, got %v", err)
	}
}

func TestFolders(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	withFixedClock(t, createdAt)

	s := newTestStore(t)
	folder := NewFolder("inspo")
	if folder.Id == "" || folder.Name != "inspo" {
		t.Fatalf("Unexpected new folder: %+v", folder)
	}
	if err := s.SaveFolder(folder); err != nil {
		t.Fatalf("Failed to save folder: %v", err)
	}

	addedAt := createdAt.Add(time.Hour)
	withFixedClock(t, addedAt)

	if err := s.AddPostToFolder(folder.Id, "p1"); err != nil {
		t.Fatalf("Failed to add post to folder: %v", err)
	}
	folders := s.GetFolders()
	if len(folders) != 1 || len(folders[0].PostIds) != 1 {
		t.Fatalf("Unexpected folders: %+v", folders)
	}
	if !folders[0].UpdatedAt.Equal(addedAt) {
		t.Errorf("Expected the add to bump UpdatedAt, got %v", folders[0].UpdatedAt)
	}

	// adding a member again is a no-op and must not bump UpdatedAt
	withFixedClock(t, addedAt.Add(time.Hour))
	if err := s.AddPostToFolder(folder.Id, "p1"); err != nil {
		t.Fatalf("Failed on repeat add: %v", err)
	}
	folders = s.GetFolders()
	if len(folders[0].PostIds) != 1 {
		t.Errorf("Expected the repeat add to not duplicate, got %v", folders[0].PostIds)
	}
	if !folders[0].UpdatedAt.Equal(addedAt) {
		t.Errorf("Expected the repeat add to leave UpdatedAt alone, got %v", folders[0].UpdatedAt)
	}

	// a removal bumps UpdatedAt even when the post was not a member
	removedAt := addedAt.Add(2 * time.Hour)
	withFixedClock(t, removedAt)
	if err := s.RemovePostFromFolder(folder.Id, "not-a-member"); err != nil {
		t.Fatalf("Failed on removal: %v", err)
	}
	folders = s.GetFolders()
	if !folders[0].UpdatedAt.Equal(removedAt) {
		t.Errorf("Expected the removal attempt to bump UpdatedAt, got %v", folders[0].UpdatedAt)
	}

	s.RemovePostFromFolder(folder.Id, "p1")
	folders = s.GetFolders()
	if len(folders[0].PostIds) != 0 {
		t.Errorf("Expected the post to be removed, got %v", folders[0].PostIds)
	}

	s.RemoveFolder(folder.Id)
	if len(s.GetFolders()) != 0 {
		t.Errorf("Expected the folder to be removed")
	}
}

func TestSettings(t *testing.T) {
	s := newTestStore(t)

	// a fresh store answers with the defaults
	settings := s.GetSettings()
	for key, value := range constants.DEFAULT_SETTINGS {
		if settings[key] != value {
			t.Errorf("Expected default %q for %q, got %q", value, key, settings[key])
		}
	}

	// updates overlay onto the stored map without clobbering the rest
	s.SaveSettings(map[string]string{"theme": "dark"})
	s.SaveSettings(map[string]string{"grid_columns": "3", "custom_key": "kept"})

	settings = s.GetSettings()
	if settings["theme"] != "dark" {
		t.Errorf("Expected the theme update to survive, got %q", settings["theme"])
	}
	if settings["grid_columns"] != "3" {
		t.Errorf("Expected the later update to apply, got %q", settings["grid_columns"])
	}
	if settings["custom_key"] != "kept" {
		t.Errorf("Expected unknown keys to be preserved, got %q", settings["custom_key"])
	}
	if settings["default_service"] != "all" {
		t.Errorf("Expected untouched keys to keep their defaults, got %q", settings["default_service"])
	}
}

func TestCorruptCollection(t *testing.T) {
	s := newTestStore(t)
	if err := s.db.SetString(constants.FAVORITE_CREATORS_KEY, "{not json"); err != nil {
		t.Fatalf("Failed to plant corrupt data: %v", err)
	}

	// corrupt stored JSON reads as empty instead of failing
	if favorites := s.GetFavoriteCreators(); len(favorites) != 0 {
		t.Errorf("Expected corrupt data to read as empty, got %+v", favorites)
	}

	// and the next write repairs the collection
	if err := s.SaveFavoriteCreator(&party.Creator{Id: "123", Service: "patreon"}); err != nil {
		t.Fatalf("Failed to save over corrupt data: %v", err)
	}
	if len(s.GetFavoriteCreators()) != 1 {
		t.Errorf("Expected the save to repair the collection")
	}
}
