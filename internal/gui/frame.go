//go:build cgo

package gui

import (
	"image/color"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UI asset file names, looked up under the assets directory. All of them
// are optional: the game falls back to flat panels and a full-window safe
// rect when they are missing.
const (
	frameAssetName     = "ui_frame_overlay.png"
	inventoryAssetName = "ui_inventory_panel.png"
	dialogAssetName    = "ui_dialog.png"
)

type uiTextures struct {
	frame     rl.Texture2D
	hasFrame  bool
	inventory rl.Texture2D
	hasInv    bool
	dialog    rl.Texture2D
	hasDialog bool

	// frameSrc is the centre-crop of the frame image used to cover the
	// window without distortion.
	frameSrc rectI
}

// imagePixels adapts a decoded image's pixel slice to the safe-rect scan.
type imagePixels struct {
	w, h   int
	pixels []color.RGBA
}

func (p imagePixels) Size() (int, int) { return p.w, p.h }

func (p imagePixels) AlphaAt(x, y int) uint8 {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return 255
	}
	return p.pixels[y*p.w+x].A
}

// loadUITextures uploads the optional UI art and computes the safe rect
// from the frame overlay's transparent centre. Must run after InitWindow.
func loadUITextures(assetsDir string) (uiTextures, rectI) {
	tex := uiTextures{}
	safe := rectI{W: screenW, H: screenH}

	if img := loadImage(filepath.Join(assetsDir, frameAssetName)); img != nil {
		pixels := imagePixels{
			w:      int(img.Width),
			h:      int(img.Height),
			pixels: rl.LoadImageColors(img),
		}
		safe = safeRectFrom(pixels)
		tex.frameSrc = coverSrcRect(pixels.w, pixels.h, screenW, screenH)
		tex.frame = rl.LoadTextureFromImage(img)
		tex.hasFrame = true
		rl.UnloadImage(img)
	}
	if img := loadImage(filepath.Join(assetsDir, inventoryAssetName)); img != nil {
		tex.inventory = rl.LoadTextureFromImage(img)
		tex.hasInv = true
		rl.UnloadImage(img)
	}
	if img := loadImage(filepath.Join(assetsDir, dialogAssetName)); img != nil {
		tex.dialog = rl.LoadTextureFromImage(img)
		tex.hasDialog = true
		rl.UnloadImage(img)
	}

	return tex, safe
}

func (t *uiTextures) unload() {
	if t.hasFrame {
		rl.UnloadTexture(t.frame)
	}
	if t.hasInv {
		rl.UnloadTexture(t.inventory)
	}
	if t.hasDialog {
		rl.UnloadTexture(t.dialog)
	}
}

func loadImage(path string) *rl.Image {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	img := rl.LoadImage(path)
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil
	}
	return img
}
