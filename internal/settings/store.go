// Package settings is the launcher's key/value preference store. Values are
// strings; the whole map lives in memory and is written out to
// launcher_config.json on every change.
package settings

import (
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"gitea.knapp/jacoknapp/launcher/internal/catalog"
	"gitea.knapp/jacoknapp/launcher/internal/logging"
	"gitea.knapp/jacoknapp/launcher/internal/notify"
	"gitea.knapp/jacoknapp/launcher/internal/storage"
	"gitea.knapp/jacoknapp/launcher/internal/version"
)

// ErrReset is returned by writes attempted after ResetAndExit cleared the
// file, so nothing can repopulate it before the process is gone.
var ErrReset = errors.New("settings were reset")

type Notifier interface {
	Notify(kind notify.Kind)
}

type Alerter interface {
	ShowAlert(msg string)
}

type VersionSource interface {
	Version() (string, error)
}

type LoadState int

const (
	// Loaded means at least one setting came from the file.
	Loaded LoadState = iota
	Missing
	Corrupt
	// Empty is a readable file with no settings in it, e.g. after a reset.
	Empty
)

func (s LoadState) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Missing:
		return "missing"
	case Corrupt:
		return "corrupt"
	case Empty:
		return "empty"
	}
	return "unknown"
}

// LoadOutcome describes how Open found the settings file.
type LoadOutcome struct {
	State LoadState
	Keys  int
	Err   error
}

type Options struct {
	Files    *storage.Files
	Catalog  *catalog.Catalog
	Version  VersionSource
	Notifier Notifier
	Alerter  Alerter
	Log      logrus.FieldLogger
	// Exit ends the process after a reset. Defaults to os.Exit.
	Exit func(code int)
}

type Store struct {
	mu      sync.RWMutex
	entries map[string]string
	outcome LoadOutcome
	reset   bool

	files    *storage.Files
	cat      *catalog.Catalog
	ver      VersionSource
	notifier Notifier
	alerter  Alerter
	log      logrus.FieldLogger
	exit     func(code int)
}

// Open loads the settings file, falling back to first-run defaults when it
// is missing or unusable, then reconciles build-derived values. It never
// fails; see Outcome for what happened on disk.
func Open(opts Options) *Store {
	s := &Store{
		files:    opts.Files,
		cat:      opts.Catalog,
		ver:      opts.Version,
		notifier: opts.Notifier,
		alerter:  opts.Alerter,
		log:      opts.Log,
		exit:     opts.Exit,
	}
	if s.log == nil {
		s.log = logging.Discard()
	}
	if s.files == nil {
		s.files = storage.New(nil)
	}
	if s.ver == nil {
		s.ver = version.New()
	}
	if s.exit == nil {
		s.exit = os.Exit
	}
	if s.cat == nil {
		c, err := catalog.Default()
		if err != nil {
			s.log.WithError(err).Error("bundled catalog unusable")
			c = &catalog.Catalog{}
		}
		s.cat = c
	}

	entries, outcome := s.load()
	s.outcome = outcome
	if outcome.State != Loaded {
		entries = make(map[string]string, len(firstRun)+len(ReconciledKeys))
		for _, e := range firstRun {
			entries[e.key] = e.value
		}
	}
	s.entries = entries
	s.reconcile()

	l := s.log.WithField("file", FileName).WithField("state", outcome.State.String())
	if outcome.Err != nil && outcome.State == Corrupt {
		l.WithError(outcome.Err).Warn("settings unreadable, using defaults")
	} else {
		l.WithField("keys", outcome.Keys).Debug("settings opened")
	}
	return s
}

func (s *Store) load() (map[string]string, LoadOutcome) {
	b, err := s.files.Read(FileName)
	if err != nil {
		if storage.IsNotExist(err) {
			return nil, LoadOutcome{State: Missing, Err: err}
		}
		return nil, LoadOutcome{State: Corrupt, Err: err}
	}
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, LoadOutcome{State: Corrupt, Err: errors.Wrapf(err, "decode %s", FileName)}
	}
	if len(m) == 0 {
		return nil, LoadOutcome{State: Empty}
	}
	return m, LoadOutcome{State: Loaded, Keys: len(m)}
}

// Outcome reports how Open found the settings file.
func (s *Store) Outcome() LoadOutcome { return s.outcome }

// Path is the settings file name inside the data directory.
func (s *Store) Path() string { return FileName }

// Get returns the value for key, or "" when unset.
func (s *Store) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[key]
}

// All returns a copy of every setting.
func (s *Store) All() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

// Set updates key and writes the whole map back to disk. The in-memory value
// sticks even if the write fails; failures are logged, not returned.
// Changing is_playing tells the home page to reload.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	changedPlayback := key == KeyIsPlaying && !strings.EqualFold(s.entries[key], value)
	s.entries[key] = value
	err := s.persistLocked()
	s.mu.Unlock()

	if changedPlayback && s.notifier != nil {
		s.notifier.Notify(notify.ReloadIndex)
	}
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("settings not saved")
	}
}

// Flush writes the current map to disk and reports the result. Open does not
// write on its own, so callers wanting the reconciled values on disk call
// this.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked()
}

func (s *Store) persistLocked() error {
	if s.reset {
		return ErrReset
	}
	b, err := json.Marshal(s.entries)
	if err != nil {
		return errors.Wrap(err, "encode settings")
	}
	return s.files.WriteAtomic(FileName, b)
}

// ResetAndExit empties the settings file and ends the process so no later
// write can bring the old values back. When the file cannot be written the
// user gets an alert and the process keeps running.
func (s *Store) ResetAndExit() error {
	s.mu.Lock()
	err := s.files.WriteAtomic(FileName, []byte("{}"))
	if err == nil {
		s.reset = true
	}
	s.mu.Unlock()

	if err != nil {
		if s.alerter != nil {
			s.alerter.ShowAlert("Unexpected error - " + err.Error())
		}
		return err
	}
	s.log.Info("settings reset, exiting")
	s.exit(0)
	return nil
}
