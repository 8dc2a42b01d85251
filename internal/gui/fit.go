//go:build cgo

package gui

// Pure layout math for texture fitting and safe-rect detection, kept free of
// raylib calls so it can be exercised headlessly.

type rectI struct {
	X, Y, W, H int
}

func (r rectI) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r rectI) centerX() int { return r.X + r.W/2 }
func (r rectI) centerY() int { return r.Y + r.H/2 }

// inflate grows (or with negative amounts shrinks) the rect around its
// centre, never below 1x1.
func (r rectI) inflate(dw, dh int) rectI {
	r.X -= dw
	r.Y -= dh
	r.W += 2 * dw
	r.H += 2 * dh
	if r.W < 1 {
		r.W = 1
	}
	if r.H < 1 {
		r.H = 1
	}
	return r
}

// clampTo forces the rect inside the bounds.
func (r rectI) clampTo(bounds rectI) rectI {
	if r.X < bounds.X {
		r.X = bounds.X
	}
	if r.Y < bounds.Y {
		r.Y = bounds.Y
	}
	if r.X+r.W > bounds.X+bounds.W {
		r.X = bounds.X + bounds.W - r.W
	}
	if r.Y+r.H > bounds.Y+bounds.H {
		r.Y = bounds.Y + bounds.H - r.H
	}
	if r.W > bounds.W {
		r.X, r.W = bounds.X, bounds.W
	}
	if r.H > bounds.H {
		r.Y, r.H = bounds.Y, bounds.H
	}
	return r
}

// containSize scales (w, h) to fit inside (maxW, maxH) keeping aspect,
// never upscaling.
func containSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return w, h
	}
	s := minF(float64(maxW)/float64(w), minF(float64(maxH)/float64(h), 1.0))
	return int(float64(w) * s), int(float64(h) * s)
}

// coverSrcRect picks the centred source sub-rectangle of a (w, h) image
// whose aspect matches (dstW, dstH), for scale-to-cover drawing.
func coverSrcRect(w, h, dstW, dstH int) rectI {
	if w <= 0 || h <= 0 || dstW <= 0 || dstH <= 0 {
		return rectI{W: w, H: h}
	}
	srcAspect := float64(w) / float64(h)
	dstAspect := float64(dstW) / float64(dstH)
	if srcAspect > dstAspect {
		// Source is wider: crop the sides.
		cw := int(float64(h) * dstAspect)
		return rectI{X: (w - cw) / 2, W: cw, H: h}
	}
	// Source is taller: crop top and bottom.
	ch := int(float64(w) / dstAspect)
	return rectI{Y: (h - ch) / 2, W: w, H: ch}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// alphaSampler exposes per-pixel alpha of a decorative frame image.
type alphaSampler interface {
	Size() (int, int)
	AlphaAt(x, y int) uint8
}

const (
	safeAlphaThreshold = 8
	safePadding        = 12
	safeFallbackInset  = safePadding + 80
)

// safeRectFrom detects the interactive window inside a decorative frame
// that has an opaque border and a transparent centre. It walks the centre
// row and column outward over the run of near-transparent pixels. Frames
// with an opaque centre, or whose detected window is implausibly small,
// get a fixed inset fallback instead.
func safeRectFrom(frame alphaSampler) rectI {
	w, h := frame.Size()
	full := rectI{W: w, H: h}
	fallback := full.inflate(-safeFallbackInset, -safeFallbackInset).clampTo(full)

	cx, cy := w/2, h/2
	if w < 2 || h < 2 || frame.AlphaAt(cx, cy) > safeAlphaThreshold {
		return fallback
	}

	left := cx
	for left > 0 && frame.AlphaAt(left-1, cy) <= safeAlphaThreshold {
		left--
	}
	right := cx
	for right < w-1 && frame.AlphaAt(right+1, cy) <= safeAlphaThreshold {
		right++
	}
	top := cy
	for top > 0 && frame.AlphaAt(cx, top-1) <= safeAlphaThreshold {
		top--
	}
	bottom := cy
	for bottom < h-1 && frame.AlphaAt(cx, bottom+1) <= safeAlphaThreshold {
		bottom++
	}

	rect := rectI{X: left, Y: top, W: right - left + 1, H: bottom - top + 1}
	rect = rect.inflate(-safePadding, -safePadding)
	if rect.W < 50 || rect.H < 50 {
		return fallback
	}
	return rect.clampTo(full)
}
