package settings

import (
	"encoding/json"

	"gitea.knapp/jacoknapp/launcher/internal/version"
)

// reconcile refreshes the values that belong to this build rather than to
// the user. Runs after every load; the caller holds the lock.
func (s *Store) reconcile() {
	for _, e := range fillIfEmpty {
		if s.entries[e.key] == "" {
			s.entries[e.key] = e.value
		}
	}

	v, err := s.ver.Version()
	if err != nil {
		s.log.WithError(err).Warn("version lookup failed")
	}
	s.entries[KeyVersionNotes] = version.Notes(v, err)

	// The home page only plays startup music while is_playing is false, so
	// a fresh process always starts out not playing.
	s.entries[KeyIsPlaying] = "false"

	themes, _ := json.Marshal(Themes)
	s.entries[KeyAllThemes] = string(themes)
	s.entries[KeySongs] = s.cat.SongsJSON()
	s.entries[KeyOrderedSongs] = s.cat.OrderedJSON()
	s.entries[KeyAwooEndpoint] = AwooEndpoint
}
