package builtin

import (
	"log/slog"
	"slices"
)

var stockOrder = []string{KeyTheme, KeyDisplayMode, KeySize}

// Manager owns the live built-in tool instances of one toolbar.
type Manager struct {
	host      Host
	factories map[string]Factory
	live      map[string]Tool
	log       *slog.Logger
}

// NewManager creates a manager with the stock factories registered.
func NewManager(h Host, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		host: h,
		factories: map[string]Factory{
			KeyTheme:       NewThemeSwitcher,
			KeyDisplayMode: NewDisplayModeSwitcher,
			KeySize:        NewSizeChanger,
		},
		live: make(map[string]Tool),
		log:  log,
	}
}

// RegisterFactory adds or replaces the factory for key. Live instances are
// not rebuilt.
func (m *Manager) RegisterFactory(key string, f Factory) {
	if key == "" || f == nil {
		return
	}
	m.factories[key] = f
}

// Known reports whether a factory exists for key.
func (m *Manager) Known(key string) bool {
	_, ok := m.factories[key]
	return ok
}

// Enable builds and registers the tool for key and returns its id. An
// existing instance for key is unregistered first. Unknown keys warn and
// return "".
func (m *Manager) Enable(key string, opts Options) string {
	f, ok := m.factories[key]
	if !ok {
		m.log.Warn("unknown built-in tool", "key", key)
		return ""
	}
	if old, ok := m.live[key]; ok {
		old.Unregister()
	}
	t := f(m.host, opts)
	m.live[key] = t
	return t.Register()
}

// Disable unregisters the tool for key, if live.
func (m *Manager) Disable(key string) {
	t, ok := m.live[key]
	if !ok {
		return
	}
	t.Unregister()
	delete(m.live, key)
}

// Get returns the live tool for key.
func (m *Manager) Get(key string) (Tool, bool) {
	t, ok := m.live[key]
	return t, ok
}

// Has reports whether key is live.
func (m *Manager) Has(key string) bool {
	_, ok := m.live[key]
	return ok
}

// Active returns live keys: stock keys first in fixed order, then custom
// keys sorted.
func (m *Manager) Active() []string {
	var keys, custom []string
	for _, k := range stockOrder {
		if _, ok := m.live[k]; ok {
			keys = append(keys, k)
		}
	}
	for k := range m.live {
		if !slices.Contains(stockOrder, k) {
			custom = append(custom, k)
		}
	}
	slices.Sort(custom)
	return append(keys, custom...)
}

// Restore re-inserts every live tool, e.g. after the registry was cleared.
func (m *Manager) Restore() {
	for _, k := range m.Active() {
		m.live[k].Register()
	}
}

// DestroyAll unregisters every live tool.
func (m *Manager) DestroyAll() {
	for _, k := range m.Active() {
		m.live[k].Unregister()
	}
	clear(m.live)
}
