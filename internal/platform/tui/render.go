package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile-quest/internal/core"
	"github.com/vovakirdan/tile-quest/internal/quest"
	"github.com/vovakirdan/tile-quest/internal/world"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorBrightBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorBrown:        lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			runColor := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != runColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[runColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// glyph is how one tile or sprite is drawn.
type glyph struct {
	runes string // one rune per terminal column, repeated when the cell is wider
	color core.Color
}

var terrainGlyphs = map[world.Terrain]glyph{
	world.TerrainOpen:  {"  ", core.ColorGreen},
	world.TerrainWall:  {"██", core.ColorGray},
	world.TerrainWater: {"≈≈", core.ColorBlue},
	world.TerrainEarth: {"::", core.ColorBrown},
	world.TerrainTree:  {"♣♣", core.ColorBrightGreen},
	world.TerrainSand:  {"··", core.ColorYellow},
}

var objectGlyphs = map[world.Kind]glyph{
	world.KindKey:   {"⚷ ", core.ColorBrightYellow},
	world.KindDoor:  {"▐▌", core.ColorOrange},
	world.KindBoots: {"⊔⊔", core.ColorCyan},
	world.KindChest: {"▣ ", core.ColorBrightYellow},
}

var directionRunes = map[world.Direction]rune{
	world.DirUp:    '^',
	world.DirDown:  'v',
	world.DirLeft:  '<',
	world.DirRight: '>',
}

// spriteGlyph turns a sprite key into terminal cells. The second phase
// of each animation mirrors the first.
func spriteGlyph(p quest.PlayerView) glyph {
	switch p.Sprite {
	case "spell1":
		return glyph{"@*", core.ColorMagenta}
	case "spell2":
		return glyph{"*@", core.ColorMagenta}
	case "sword1":
		return glyph{"@/", core.ColorWhite}
	case "sword2":
		return glyph{"@\\", core.ColorWhite}
	}
	d := string(directionRunes[p.Direction])
	if strings.HasSuffix(string(p.Sprite), "_2") {
		return glyph{d + "@", core.ColorBrightWhite}
	}
	return glyph{"@" + d, core.ColorBrightWhite}
}

// Board places a scene on a screen. Each tile is CellWidth columns wide
// and one row tall.
type Board struct {
	CellWidth int
	OffsetX   int
	OffsetY   int
}

// Size returns the terminal size needed for a grid.
func (b Board) Size(g *world.Grid) (w, h int) {
	return g.Width() * b.CellWidth, g.Height()
}

// Draw renders terrain, objects and the player.
func (b Board) Draw(dst *core.Screen, scene quest.Scene) {
	if scene.Grid == nil || scene.TileSize <= 0 {
		return
	}

	for row := 0; row < scene.Grid.Height(); row++ {
		for col := 0; col < scene.Grid.RowLen(row); col++ {
			t, _ := scene.Grid.At(col, row)
			if gl, ok := terrainGlyphs[t]; ok {
				b.put(dst, col*b.CellWidth, row, gl)
			}
		}
	}

	for _, o := range scene.Objects {
		gl, ok := objectGlyphs[o.Kind]
		if !ok {
			continue
		}
		b.put(dst, b.column(o.X, scene.TileSize), b.row(o.Y, scene.TileSize), gl)
	}

	p := scene.Player
	b.put(dst, b.column(p.X, scene.TileSize), b.row(p.Y, scene.TileSize), spriteGlyph(p))
}

// column maps a pixel x onto a board column.
func (b Board) column(x, tileSize int) int {
	return core.FloorDiv(x*b.CellWidth+tileSize/2, tileSize)
}

// row maps a pixel y onto the nearest board row.
func (b Board) row(y, tileSize int) int {
	return core.FloorDiv(y+tileSize/2, tileSize)
}

func (b Board) put(dst *core.Screen, x, y int, gl glyph) {
	runes := []rune(gl.runes)
	if len(runes) == 0 {
		return
	}
	for i := 0; i < b.CellWidth; i++ {
		r := runes[min(i, len(runes)-1)]
		dst.Set(b.OffsetX+x+i, b.OffsetY+y, r, gl.color)
	}
}

// drawOverlay draws a centered two-line box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawBox(box, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
