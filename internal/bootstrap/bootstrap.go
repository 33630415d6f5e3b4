package bootstrap

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"gitea.knapp/jacoknapp/launcher/internal/catalog"
	"gitea.knapp/jacoknapp/launcher/internal/config"
	"gitea.knapp/jacoknapp/launcher/internal/logging"
	"gitea.knapp/jacoknapp/launcher/internal/notify"
	"gitea.knapp/jacoknapp/launcher/internal/settings"
	"gitea.knapp/jacoknapp/launcher/internal/storage"
	"gitea.knapp/jacoknapp/launcher/internal/version"
)

// App is everything the shell wires together at start.
type App struct {
	Config   *config.Config
	Log      *logrus.Logger
	Events   *notify.Dispatcher
	Catalog  *catalog.Catalog
	Settings *settings.Store
}

type Options struct {
	// LogOut defaults to stderr.
	LogOut io.Writer
	// Exit is called after a settings reset. Defaults to os.Exit.
	Exit func(code int)
}

// EnsureFirstRun writes a default host config when there is none, loads it,
// and opens the settings store in the data directory. A non-empty dataDir
// overrides and is saved back to the config.
func EnsureFirstRun(cfgPath, dataDir string, opts Options) (*App, error) {
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return nil, err
	}

	if _, err := os.Stat(cfgPath); errors.Is(err, os.ErrNotExist) {
		if err := config.Save(cfgPath, config.Default(dataDir)); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	if dataDir != "" && dataDir != cfg.Data.Dir {
		cfg.Data.Dir = dataDir
		_ = config.Save(cfgPath, cfg)
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = filepath.Dir(cfgPath)
	}
	// Private storage: nobody else on the device reads it.
	if err := os.MkdirAll(cfg.Data.Dir, 0o700); err != nil {
		return nil, err
	}

	log := logging.New(cfg.LogLevel(), cfg.Log.Format, opts.LogOut)

	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	events := notify.NewDispatcher(log)
	store := settings.Open(settings.Options{
		Files:    storage.Dir(cfg.Data.Dir),
		Catalog:  cat,
		Version:  version.New(),
		Notifier: events,
		Alerter:  events,
		Log:      log.WithField("component", "settings"),
		Exit:     opts.Exit,
	})
	out := store.Outcome()
	log.WithField("dir", cfg.Data.Dir).WithField("state", out.State.String()).Info("settings ready")

	return &App{Config: cfg, Log: log, Events: events, Catalog: cat, Settings: store}, nil
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Manifest == "" {
		return catalog.Default()
	}
	return catalog.Load(afero.NewOsFs(), cfg.Catalog.Manifest)
}
