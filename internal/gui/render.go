//go:build cgo

package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/SlavicJan/way-of-warrior/internal/game"
)

const (
	fontSize     = 18
	enemyBarW    = 28
	portalCoreR  = 6
	heroRadius   = 7
	enemyRadius  = 10
	pathDotR     = 4
	panelPadding = 8
)

func (ui *gameUI) draw() {
	state := ui.state

	rl.BeginScissorMode(int32(ui.safe.X), int32(ui.safe.Y), int32(ui.safe.W), int32(ui.safe.H))
	ui.drawGrid()
	ui.drawPath()
	ui.drawHero()
	ui.drawPortal()
	ui.drawEnemies()
	rl.EndScissorMode()

	ui.drawHUD()
	ui.drawPanels()

	if ui.tex.hasFrame {
		src := rl.NewRectangle(float32(ui.tex.frameSrc.X), float32(ui.tex.frameSrc.Y),
			float32(ui.tex.frameSrc.W), float32(ui.tex.frameSrc.H))
		dest := rl.NewRectangle(0, 0, screenW, screenH)
		rl.DrawTexturePro(ui.tex.frame, src, dest, rl.Vector2{}, 0, rl.White)
	}

	if state.Debug {
		ui.drawDebug()
	}
}

// cellScreen returns the screen position of a cell's diamond centre.
func (ui *gameUI) cellScreen(c game.Cell) (int32, int32) {
	cx, cy := game.CellCenter(c)
	sx, sy := ui.state.Camera.ToScreen(cx, cy)
	return int32(sx), int32(sy)
}

func (ui *gameUI) drawGrid() {
	cam := ui.state.Camera
	for y := 0; y < game.GridH; y++ {
		for x := 0; x < game.GridW; x++ {
			cell := game.Cell{X: x, Y: y}
			ix, iy := game.GridToIso(cell)
			sx, sy := cam.ToScreen(ix, iy)

			// Cull tiles fully outside the window.
			if sx < -game.TileW || sx > screenW+game.TileW || sy < -game.TileH || sy > screenH+game.TileH {
				continue
			}

			fill := colorGrid
			if (x+y)%2 == 1 {
				fill = colorGridDark
			}
			if ui.state.World.IsBlocked(cell) {
				fill = colorRock
			}

			// Diamond corners, fan-ordered: top, left, bottom, right.
			top := rl.NewVector2(float32(sx+game.TileW/2), float32(sy))
			left := rl.NewVector2(float32(sx), float32(sy+game.TileH/2))
			bottom := rl.NewVector2(float32(sx+game.TileW/2), float32(sy+game.TileH))
			right := rl.NewVector2(float32(sx+game.TileW), float32(sy+game.TileH/2))

			rl.DrawTriangleFan([]rl.Vector2{top, left, bottom, right}, fill)
			rl.DrawLineV(top, left, colorTileEdge)
			rl.DrawLineV(left, bottom, colorTileEdge)
			rl.DrawLineV(bottom, right, colorTileEdge)
			rl.DrawLineV(right, top, colorTileEdge)
		}
	}
}

func (ui *gameUI) drawPath() {
	for _, c := range ui.state.Hero.Path() {
		sx, sy := ui.cellScreen(c)
		rl.DrawCircle(sx, sy-4, pathDotR, colorPathDot)
	}
}

func (ui *gameUI) drawHero() {
	sx, sy := ui.cellScreen(ui.state.Hero.Cell)
	rl.DrawCircle(sx, sy-10, heroRadius, colorHero)
}

func (ui *gameUI) drawPortal() {
	sx, sy := ui.cellScreen(ui.state.Portal.Cell)
	t := ui.state.Portal.Clock()

	r1 := float32(18 + 4*math.Sin(t*2.2))
	r2 := float32(28 + 5*math.Sin(t*1.3+1.0))
	center := rl.NewVector2(float32(sx), float32(sy-10))

	rl.DrawRing(center, r2-1.5, r2+1.5, 0, 360, 32, colorPortal)
	rl.DrawRing(center, r1-1, r1+1, 0, 360, 32, colorPortalHot)
	rl.DrawCircleV(center, portalCoreR, colorPortalEye)
}

func (ui *gameUI) drawEnemies() {
	for _, e := range ui.state.Enemies {
		sx, sy := ui.cellScreen(e.Cell)
		rl.DrawCircle(sx, sy-14, enemyRadius, colorEnemy)
		rl.DrawCircleLines(sx, sy-14, enemyRadius, colorTileEdge)

		ratio := float32(e.HP) / float32(game.MaxEnemyHP)
		if ratio < 0 {
			ratio = 0
		}
		if ratio > 1 {
			ratio = 1
		}
		bx := sx - enemyBarW/2
		by := sy - 30
		rl.DrawRectangle(bx, by, enemyBarW, 5, colorEnemyBar)
		rl.DrawRectangle(bx, by, int32(enemyBarW*ratio), 5, colorEnemy)
	}
}

func (ui *gameUI) drawHUD() {
	state := ui.state

	// Stats: centred above the playfield.
	stats := state.StatsLine()
	statsW := rl.MeasureText(stats, fontSize)
	statsY := int32(ui.safe.Y - 28)
	if statsY < 10 {
		statsY = 10
	}
	rl.DrawText(stats, int32(ui.safe.centerX())-statsW/2, statsY, fontSize, colorText)

	if state.PortalNearby() {
		rl.DrawText("Portal nearby: press E", int32(ui.safe.X+14), int32(ui.safe.Y+ui.safe.H-34), fontSize, colorHintWarm)
	}

	msgY := int32(ui.safe.Y + ui.safe.H + 6)
	if msgY > screenH-22 {
		msgY = screenH - 24
	}
	rl.DrawText(state.Message, int32(ui.safe.X+14), msgY, fontSize, colorTextDim)
}

func (ui *gameUI) drawPanels() {
	if ui.state.ShowInventory {
		maxW, maxH := int(0.62*float64(screenW)), int(0.78*float64(screenH))
		ui.drawPanel(ui.tex.inventory, ui.tex.hasInv, maxW, maxH, func(w, h int) (int, int) {
			return ui.safe.X + ui.safe.W - w - panelPadding, ui.safe.Y + panelPadding
		})
	}
	if ui.state.ShowDialog {
		maxW, maxH := int(0.78*float64(screenW)), int(0.48*float64(screenH))
		ui.drawPanel(ui.tex.dialog, ui.tex.hasDialog, maxW, maxH, func(w, h int) (int, int) {
			return ui.safe.centerX() - w/2, ui.safe.Y + 18
		})
	}
}

// drawPanel draws a contain-scaled texture, or a flat bordered panel when
// the art is missing, positioned by the place callback.
func (ui *gameUI) drawPanel(tex rl.Texture2D, hasArt bool, maxW, maxH int, place func(w, h int) (int, int)) {
	w, h := maxW, maxH
	if hasArt {
		w, h = containSize(int(tex.Width), int(tex.Height), maxW, maxH)
	}
	x, y := place(w, h)

	if hasArt {
		src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
		dest := rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))
		rl.DrawTexturePro(tex, src, dest, rl.Vector2{}, 0, rl.White)
		return
	}
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), rl.Fade(colorBG, 0.92))
	rl.DrawRectangleLinesEx(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), 2, colorGrid)
}

func (ui *gameUI) drawDebug() {
	rl.DrawRectangleLinesEx(
		rl.NewRectangle(float32(ui.safe.X), float32(ui.safe.Y), float32(ui.safe.W), float32(ui.safe.H)),
		2, colorDebug)

	line1 := fmt.Sprintf("SAFE_RECT: %d,%d %dx%d", ui.safe.X, ui.safe.Y, ui.safe.W, ui.safe.H)
	line2 := fmt.Sprintf("PORTAL TILE: (%d,%d)  seed %d",
		ui.state.Portal.Cell.X, ui.state.Portal.Cell.Y, ui.state.Config.Seed)
	rl.DrawText(line1, 10, 10, fontSize, colorDebug)
	rl.DrawText(line2, 10, 32, fontSize, colorDebug)
}
