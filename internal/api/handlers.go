package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Wintermark/overworld/internal/catalog"
	"github.com/Wintermark/overworld/internal/player"
	"github.com/Wintermark/overworld/internal/viewport"
	"github.com/Wintermark/overworld/internal/world"
	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Handler serves the generated world over HTTP. The world core is
// single-threaded, so every mutation and every read of mutable world state
// goes through mu.
type Handler struct {
	mu        sync.Mutex
	world     *world.World
	sessions  *player.Manager
	viewports *viewport.Builder
	startedAt time.Time
}

func NewHandler(w *world.World, sessions *player.Manager, viewports *viewport.Builder) *Handler {
	return &Handler{
		world:     w,
		sessions:  sessions,
		viewports: viewports,
		startedAt: time.Now(),
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "overworld",
		"version":   "1.0.0",
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response)
}

func (h *Handler) GetWorld(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	elapsed := h.world.TimeElapsed()
	h.mu.Unlock()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]interface{}{
		"columns":       h.world.Columns,
		"rows":          h.world.Rows,
		"screen_width":  h.world.ScreenWidth,
		"screen_height": h.world.ScreenHeight,
		"total_width":   h.world.TotalWidth(),
		"total_height":  h.world.TotalHeight(),
		"spawn_screen":  h.world.SpawnScreen,
		"spawn_tile":    h.world.SpawnTile,
		"time_elapsed":  elapsed,
		"uptime":        time.Since(h.startedAt).Seconds(),
		"sessions":      h.sessions.Count(),
	})
}

func (h *Handler) GetScreen(w http.ResponseWriter, r *http.Request) {
	coord, ok := h.screenParam(w, r)
	if !ok {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	screen := h.world.Screen(coord)

	terrain := make([][]string, len(screen.Terrain))
	for y, row := range screen.Terrain {
		ids := make([]string, len(row))
		for x, tile := range row {
			ids[x] = tile.ID
		}
		terrain[y] = ids
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]interface{}{
		"screen":     coord,
		"biome":      screen.Biome,
		"weights":    screen.BiomeWeights,
		"palette":    screen.Tiles,
		"terrain":    terrain,
		"enemies":    screen.Enemies,
		"characters": screen.Characters,
	})
}

func (h *Handler) DefeatEnemy(w http.ResponseWriter, r *http.Request) {
	coord, enemy, ok := h.enemyParam(w, r)
	if !ok {
		return
	}

	h.mu.Lock()
	enemy.HP = 0
	enemy.Defeated = true
	h.mu.Unlock()

	log.Info("Enemy defeated",
		"enemy", enemy.ID,
		"screen_x", coord.X,
		"screen_y", coord.Y,
	)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, enemy)
}

func (h *Handler) ResetEnemy(w http.ResponseWriter, r *http.Request) {
	_, enemy, ok := h.enemyParam(w, r)
	if !ok {
		return
	}

	h.mu.Lock()
	h.world.ResetEnemy(enemy)
	h.mu.Unlock()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, enemy)
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string        `json:"name"`
		Stats catalog.Stats `json:"stats"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	p, err := h.sessions.Create(req.Name, req.Stats)
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "failed to create session", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, p)
}

func (h *Handler) MoveSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		DX int `json:"dx"`
		DY int `json:"dy"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if abs(req.DX)+abs(req.DY) != 1 {
		h.renderError(w, r, http.StatusBadRequest, "move must be a single orthogonal step", nil)
		return
	}

	h.mu.Lock()
	p, moved, err := h.sessions.Move(id, req.DX, req.DY)
	if err == nil {
		h.world.AdvanceTime(p.MovementInterval())
	}
	h.mu.Unlock()

	if err != nil {
		h.renderError(w, r, http.StatusNotFound, "unknown session", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]interface{}{
		"player": p,
		"moved":  moved,
	})
}

func (h *Handler) GetViewport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, ok := h.sessions.Get(id)
	if !ok {
		h.renderError(w, r, http.StatusNotFound, "unknown session", nil)
		return
	}

	h.mu.Lock()
	frame := h.viewports.Snapshot(p)
	h.mu.Unlock()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, frame)
}

func (h *Handler) screenParam(w http.ResponseWriter, r *http.Request) (world.Coord, bool) {
	x, err := strconv.Atoi(chi.URLParam(r, "x"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid screen x coordinate", err)
		return world.Coord{}, false
	}
	y, err := strconv.Atoi(chi.URLParam(r, "y"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid screen y coordinate", err)
		return world.Coord{}, false
	}

	coord := world.Coord{X: x, Y: y}
	if !h.world.Contains(coord) {
		h.renderError(w, r, http.StatusNotFound, "screen outside world grid", nil)
		return world.Coord{}, false
	}
	return coord, true
}

func (h *Handler) enemyParam(w http.ResponseWriter, r *http.Request) (world.Coord, *world.Enemy, bool) {
	coord, ok := h.screenParam(w, r)
	if !ok {
		return world.Coord{}, nil, false
	}

	idx, err := strconv.Atoi(chi.URLParam(r, "idx"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid enemy index", err)
		return world.Coord{}, nil, false
	}

	h.mu.Lock()
	enemies := h.world.EnemiesAt(coord)
	h.mu.Unlock()

	if idx < 0 || idx >= len(enemies) {
		h.renderError(w, r, http.StatusNotFound, "enemy index out of range", nil)
		return world.Coord{}, nil, false
	}
	return coord, enemies[idx], true
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	errorResponse := ErrorResponse{
		Error:   message,
		Code:    status,
		Message: message,
	}

	if err != nil {
		log.Error("API error", "error", err, "message", message, "status", status)
		// Don't expose internal errors to the client
		if status >= 500 {
			errorResponse.Error = "Internal server error"
		}
	}

	render.Status(r, status)
	render.JSON(w, r, errorResponse)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
