package player

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/Wintermark/overworld/internal/catalog"
	"github.com/Wintermark/overworld/internal/config"
	"github.com/Wintermark/overworld/internal/world"
	"github.com/charmbracelet/log"
)

// DefaultStats is used when a session is created without explicit stats.
var DefaultStats = catalog.Stats{Strength: 5, Agility: 5, Intellect: 5}

// Manager owns the in-memory player sessions. The world core is
// single-threaded, so every session mutation goes through the manager's lock.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Player
	world    *world.World
	cfg      config.Config
}

func NewManager(w *world.World, cfg config.Config) *Manager {
	return &Manager{
		sessions: make(map[string]*Player),
		world:    w,
		cfg:      cfg,
	}
}

// Create starts a new session at the world spawn and returns the player.
func (m *Manager) Create(name string, stats catalog.Stats) (*Player, error) {
	id, err := newSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}
	if name == "" {
		name = "adventurer"
	}
	if stats == (catalog.Stats{}) {
		stats = DefaultStats
	}

	p := New(id, name, stats, m.world, m.cfg)

	m.mu.Lock()
	m.sessions[id] = p
	m.mu.Unlock()

	log.Info("Session created",
		"session_id", id,
		"name", name,
		"screen_x", p.Screen.X,
		"screen_y", p.Screen.Y,
	)
	return p, nil
}

// Get looks up a session by id.
func (m *Manager) Get(id string) (*Player, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.sessions[id]
	return p, ok
}

// Move steps a session's player under the manager lock.
func (m *Manager) Move(id string, dx, dy int) (*Player, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.sessions[id]
	if !ok {
		return nil, false, fmt.Errorf("unknown session %q", id)
	}
	moved := p.Move(m.world, dx, dy)
	return p, moved, nil
}

// Remove deletes a session. Removing an unknown id is a no-op.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
