package store

import (
	"github.com/IR2816/Party-Gallery-Logic/constants"
)

func (s *Store) getSettings() map[string]string {
	settings := make(map[string]string)
	s.getCollection(constants.SETTINGS_KEY, &settings)
	return settings
}

// GetSettings returns the settings map with the defaults filled in for
// any missing key. Keys unknown to this version are kept as-is.
func (s *Store) GetSettings() map[string]string {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()

	settings := s.getSettings()
	for key, value := range constants.DEFAULT_SETTINGS {
		if _, ok := settings[key]; !ok {
			settings[key] = value
		}
	}
	return settings
}

// SaveSettings overlays the given entries onto the stored settings map.
// Entries not named in the input are left untouched.
func (s *Store) SaveSettings(updates map[string]string) error {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()

	settings := s.getSettings()
	for key, value := range updates {
		settings[key] = value
	}
	return s.setCollection(constants.SETTINGS_KEY, settings)
}
