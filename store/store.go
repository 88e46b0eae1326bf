// Package store persists named emitter styles across runs with gdata, the
// cross-platform save-data library. Styles are kept in the ember style
// format, one property per style, so a saved style can be copied into a
// style file by hand. Only configuration is stored, never particle state.
package store

import (
	"errors"
	"fmt"
	"slices"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/ember"
)

var (
	// ErrNotFound is returned by Load for a name that was never saved.
	ErrNotFound = errors.New("store: style not found")
	// ErrInvalidName is returned for names that cannot be used as a
	// storage key.
	ErrInvalidName = errors.New("store: invalid style name")
)

// Storage layout.
const (
	styleObject = "styles"
	indexObject = "index"
	indexProp   = "names"
)

// Store saves and loads named styles.
type Store struct {
	m *gdata.Manager
}

// Open creates a store in the per-user data directory of appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("store: failed to open %q: %w", appName, err)
	}
	return New(m), nil
}

// New wraps an existing gdata manager, for applications that keep other
// save data next to their styles.
func New(m *gdata.Manager) *Store {
	return &Store{m: m}
}

// Save writes cfg under name, replacing any previous style of that name.
func (s *Store) Save(name string, cfg ember.EmitterConfig) error {
	if err := checkName(name); err != nil {
		return err
	}
	data, err := ember.MarshalStyle(cfg)
	if err != nil {
		return fmt.Errorf("store: failed to marshal %q: %w", name, err)
	}
	if err := s.m.SaveObjectProp(styleObject, name, data); err != nil {
		return fmt.Errorf("store: failed to save %q: %w", name, err)
	}

	names, err := s.Names()
	if err != nil {
		return err
	}
	if i, found := slices.BinarySearch(names, name); !found {
		names = slices.Insert(names, i, name)
		return s.saveIndex(names)
	}
	return nil
}

// Load reads the style saved under name.
func (s *Store) Load(name string) (ember.EmitterConfig, error) {
	if err := checkName(name); err != nil {
		return ember.EmitterConfig{}, err
	}
	if !s.m.ObjectPropExists(styleObject, name) {
		return ember.EmitterConfig{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	data, err := s.m.LoadObjectProp(styleObject, name)
	if err != nil {
		return ember.EmitterConfig{}, fmt.Errorf("store: failed to load %q: %w", name, err)
	}
	cfg, err := ember.UnmarshalStyle(data)
	if err != nil {
		return ember.EmitterConfig{}, fmt.Errorf("store: %q: %w", name, err)
	}
	return cfg, nil
}

// Exists reports whether a style was saved under name.
func (s *Store) Exists(name string) bool {
	return checkName(name) == nil && s.m.ObjectPropExists(styleObject, name)
}

// Names returns the saved style names in sorted order.
func (s *Store) Names() ([]string, error) {
	if !s.m.ObjectPropExists(indexObject, indexProp) {
		return nil, nil
	}
	data, err := s.m.LoadObjectProp(indexObject, indexProp)
	if err != nil {
		return nil, fmt.Errorf("store: failed to load index: %w", err)
	}
	var names []string
	if err := yaml.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("store: failed to parse index: %w", err)
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

func (s *Store) saveIndex(names []string) error {
	data, err := yaml.Marshal(names)
	if err != nil {
		return fmt.Errorf("store: failed to marshal index: %w", err)
	}
	if err := s.m.SaveObjectProp(indexObject, indexProp, data); err != nil {
		return fmt.Errorf("store: failed to save index: %w", err)
	}
	return nil
}

// checkName accepts 1 to 64 ASCII letters, digits, '-' and '_', which are
// safe as file names on every gdata backend.
func checkName(name string) error {
	if name == "" || len(name) > 64 {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	return nil
}
