// Package hotkey registers global keyboard shortcuts.
package hotkey

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	hook "github.com/robotn/gohook"
)

var modifiers = []string{"ctrl", "shift", "alt", "cmd"}

// Binding ties a key combination such as "ctrl+shift+v" to an action.
type Binding struct {
	Combo  string
	Action func()
}

// Manager listens for the global hotkeys of its bindings.
type Manager struct {
	bindings []Binding

	mu      sync.Mutex
	running bool
	done    chan struct{}
}

// NewManager creates a Manager for bindings. Nothing is registered until
// Start.
func NewManager(bindings ...Binding) *Manager {
	return &Manager{bindings: bindings}
}

// Start registers the bindings and begins listening in the background.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return nil
	}

	keys := make([][]string, len(m.bindings))
	for i, b := range m.bindings {
		k, err := Parse(b.Combo)
		if err != nil {
			return fmt.Errorf("binding %q: %w", b.Combo, err)
		}
		keys[i] = k
	}

	for i, b := range m.bindings {
		action := b.Action
		hook.Register(hook.KeyDown, keys[i], func(hook.Event) {
			// Keep the hook goroutine free for input events.
			go action()
		})
		slog.Debug("hotkey registered", "combo", b.Combo)
	}

	events := hook.Start()
	m.done = make(chan struct{})
	m.running = true

	go func(done chan struct{}) {
		<-hook.Process(events)
		close(done)
	}(m.done)

	return nil
}

// Stop unregisters the bindings and waits for the listener to exit.
func (m *Manager) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	done := m.done
	m.mu.Unlock()

	hook.End()
	<-done
}

// Parse turns "ctrl+shift+v" into the key list the hook library expects:
// the key first, followed by its modifiers.
func Parse(combo string) ([]string, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(combo)), "+")

	var key string
	var mods []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		switch {
		case p == "":
			return nil, fmt.Errorf("empty key in %q", combo)
		case slices.Contains(modifiers, p):
			if slices.Contains(mods, p) {
				return nil, fmt.Errorf("duplicate modifier %q", p)
			}
			mods = append(mods, p)
		case key != "":
			return nil, fmt.Errorf("more than one key in %q", combo)
		default:
			key = p
		}
	}

	if key == "" {
		return nil, fmt.Errorf("no key in %q", combo)
	}
	if len(mods) == 0 {
		return nil, fmt.Errorf("global hotkey %q needs a modifier", combo)
	}
	return append([]string{key}, mods...), nil
}
