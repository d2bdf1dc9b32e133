// Package settings persists demo host preferences (mute flag, last opened
// scene) across runs. It degrades to in-memory settings when no storage is
// available.
package settings

import (
	"github.com/pkg/errors"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	AppName = "wavelayout"

	settingsObject   = "settings"
	settingsProperty = "global"
)

type Settings struct {
	Muted     bool   `yaml:"muted"`
	LastScene string `yaml:"lastScene,omitempty"`
}

func Defaults() *Settings {
	return &Settings{}
}

// Store is the gdata interface the manager needs.
type Store interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

type Manager struct {
	store    Store
	settings *Settings
	log      *zap.Logger
}

// Open opens the gdata storage for the application. A storage failure is
// logged and leaves the manager memory-only.
func Open(log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Warn("settings storage unavailable, using memory only", zap.Error(err))
		return NewManager(nil, log)
	}
	return NewManager(m, log)
}

// NewManager loads settings from store, which may be nil.
func NewManager(store Store, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	sm := &Manager{store: store, settings: Defaults(), log: log}
	if err := sm.Load(); err != nil {
		log.Warn("failed to load settings, using defaults", zap.Error(err))
	}
	return sm
}

func (sm *Manager) Load() error {
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = Defaults()
		return nil
	}
	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = Defaults()
		return errors.Wrap(err, "load settings")
	}
	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = Defaults()
		return errors.Wrap(err, "unmarshal settings")
	}
	sm.settings = &loaded
	sm.log.Debug("settings loaded", zap.Bool("muted", loaded.Muted), zap.String("last_scene", loaded.LastScene))
	return nil
}

// Save is a no-op without storage.
func (sm *Manager) Save() error {
	if sm.store == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return errors.Wrap(err, "marshal settings")
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return errors.Wrap(err, "save settings")
	}
	return nil
}

func (sm *Manager) Settings() Settings { return *sm.settings }

func (sm *Manager) SetMuted(muted bool) { sm.settings.Muted = muted }

func (sm *Manager) SetLastScene(path string) { sm.settings.LastScene = path }
