package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/Wintermark/overworld/cmd/debug/components"
	"github.com/Wintermark/overworld/internal/player"
	"github.com/Wintermark/overworld/internal/viewport"
	"github.com/Wintermark/overworld/internal/world"
)

// ExplorerModel walks a freshly built world through the same viewport the
// server serves, so what the debug tool shows is what clients get.
type ExplorerModel struct {
	world     *world.World
	player    *player.Player
	viewports *viewport.Builder

	width  int
	height int
	status string
}

func NewExplorer(w *world.World, p *player.Player, viewports *viewport.Builder) ExplorerModel {
	return ExplorerModel{
		world:     w,
		player:    p,
		viewports: viewports,
	}
}

func (m ExplorerModel) Init() tea.Cmd {
	return nil
}

func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "up", "k":
			m.step(0, -1)
		case "down", "j":
			m.step(0, 1)
		case "left", "h":
			m.step(-1, 0)
		case "right", "l":
			m.step(1, 0)
		}
	}

	return m, nil
}

func (m *ExplorerModel) step(dx, dy int) {
	if m.player.Move(m.world, dx, dy) {
		m.status = ""
		return
	}
	m.status = "blocked"
}

func (m ExplorerModel) View() string {
	frame := m.viewports.Snapshot(m.player)

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("overworld explorer"))
	b.WriteString("\n")
	b.WriteString(m.renderFrame(frame))
	b.WriteString("\n")
	b.WriteString(m.renderStatus(frame))
	b.WriteString("\n")
	b.WriteString(components.HelpStyle.Render("arrows/hjkl move · q quit"))
	return b.String()
}

// renderFrame paints the tile grid and overlays footprints, enemies,
// characters and the player, in that order.
func (m ExplorerModel) renderFrame(frame viewport.Frame) string {
	type overlay struct {
		glyph string
		fg    string
		bg    string
	}
	overlays := make(map[[2]int]overlay)
	for _, fp := range frame.Footprints {
		overlays[[2]int{fp.X, fp.Y}] = overlay{fp.Tile.Glyph, fp.Tile.FG, fp.Tile.BG}
	}
	for _, e := range frame.Enemies {
		overlays[[2]int{e.X, e.Y}] = overlay{e.Glyph, e.FG, e.BG}
	}
	for _, c := range frame.Characters {
		overlays[[2]int{c.X, c.Y}] = overlay{c.Glyph, c.FG, c.BG}
	}
	overlays[[2]int{frame.PlayerX, frame.PlayerY}] = overlay{"@", "#F0C850", ""}

	var b strings.Builder
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			tile := frame.Tiles[y][x]
			glyph, fg, bg := tile.Glyph, tile.FG, tile.BG
			if o, ok := overlays[[2]int{x, y}]; ok {
				glyph, fg = o.glyph, o.fg
				if o.bg != "" {
					bg = o.bg
				}
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
			if bg != "" {
				style = style.Background(lipgloss.Color(bg))
			}
			b.WriteString(style.Render(glyph))
		}
		if y < frame.Height-1 {
			b.WriteString("\n")
		}
	}
	return components.MapBorderStyle.Render(b.String())
}

func (m ExplorerModel) renderStatus(frame viewport.Frame) string {
	biome := components.BiomeStyle(string(frame.Biome)).Render(string(frame.Biome))
	pos := fmt.Sprintf("screen (%d,%d) tile (%d,%d) camera (%d,%d)",
		m.player.Screen.X, m.player.Screen.Y,
		m.player.X, m.player.Y,
		frame.CameraX, frame.CameraY,
	)

	line := components.StatusStyle.Render(pos) + " " + biome
	if m.status != "" {
		line += " " + components.ErrorStyle.Render(m.status)
	}
	return line
}
