//go:build cgo

package gui

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	screenW = 1280
	screenH = 720

	uiMargin = 18
)

var (
	colorBG        = rl.NewColor(18, 20, 24, 255)
	colorGrid      = rl.NewColor(44, 48, 58, 255)
	colorGridDark  = rl.NewColor(34, 38, 46, 255)
	colorRock      = rl.NewColor(40, 40, 44, 255)
	colorTileEdge  = rl.NewColor(0, 0, 0, 255)
	colorText      = rl.NewColor(235, 235, 235, 255)
	colorTextDim   = rl.NewColor(210, 210, 210, 255)
	colorHintWarm  = rl.NewColor(255, 220, 120, 255)
	colorDebug     = rl.NewColor(255, 255, 0, 255)
	colorHero      = rl.NewColor(240, 240, 240, 255)
	colorPathDot   = rl.NewColor(255, 210, 80, 255)
	colorEnemy     = rl.NewColor(240, 90, 90, 255)
	colorEnemyBar  = rl.NewColor(30, 30, 30, 255)
	colorPortal    = rl.NewColor(40, 180, 255, 255)
	colorPortalHot = rl.NewColor(120, 220, 255, 255)
	colorPortalEye = rl.NewColor(40, 80, 120, 255)
)
