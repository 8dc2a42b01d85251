//go:build cgo

package gui

import rl "github.com/gen2brain/raylib-go/raylib"

func shiftDown() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}

func panLeftDown() bool {
	return rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft)
}

func panRightDown() bool {
	return rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight)
}

func panUpDown() bool {
	return rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp)
}

func panDownDown() bool {
	return rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown)
}
