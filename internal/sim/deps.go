package sim

import (
	"go.uber.org/zap"

	"tile-sandbox/internal/config"
	"tile-sandbox/internal/gui"
	"tile-sandbox/internal/render"
	"tile-sandbox/internal/store"
)

// Deps are the collaborators a simulation may use. Every field is
// optional.
type Deps struct {
	Log    *zap.Logger
	Store  *store.Store
	Loader render.TextureLoader
	Images []string
}

func (d Deps) logger() *zap.Logger {
	if d.Log == nil {
		return zap.NewNop()
	}
	return d.Log
}

// NewDeps opens the save store for name and lists the configured image
// directory. Failures are logged and leave the field empty, since neither
// is needed to run.
func NewDeps(cfg config.Config, name string, loader render.TextureLoader, log *zap.Logger) Deps {
	d := Deps{Log: log, Loader: loader}
	l := d.logger()
	if st, err := store.Open(cfg.SaveDir, name); err != nil {
		l.Warn("save store unavailable", zap.Error(err))
	} else {
		d.Store = st
	}
	if cfg.Panel.Images != "" {
		images, err := gui.ListImages(cfg.Panel.Images)
		if err != nil {
			l.Warn("image directory unreadable", zap.String("dir", cfg.Panel.Images), zap.Error(err))
		}
		d.Images = images
	}
	return d
}
