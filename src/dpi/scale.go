package dpi

import (
	"image"

	"golang.org/x/image/draw"
)

// Factor returns the scale factor for dpi relative to BaseDPI.
func Factor(dpi uint16) float64 {
	if dpi == 0 {
		return 1
	}
	return float64(dpi) / BaseDPI
}

// Scale converts px, measured at BaseDPI, to dpi. It rounds half away from
// zero, as MulDiv does.
func Scale(px int, dpi uint16) int {
	if dpi == 0 {
		dpi = BaseDPI
	}
	n := int64(px) * int64(dpi)
	if n < 0 {
		return -int((-n + BaseDPI/2) / BaseDPI)
	}
	return int((n + BaseDPI/2) / BaseDPI)
}

// ScaleImage resamples img, authored at BaseDPI, for display at dpi. The
// result is always a new RGBA image owned by the caller.
func ScaleImage(img image.Image, dpi uint16) *image.RGBA {
	b := img.Bounds()
	w, h := Scale(b.Dx(), dpi), Scale(b.Dy(), dpi)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
