// Package resources loads string and image resources embedded in a module.
package resources

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"strings"
	"unicode/utf16"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"

	"desktop-utils/src/logutil"
	"desktop-utils/src/winapi"
)

// TypePNG is the custom resource type PNG images are stored under.
const TypePNG = "PNG"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrEmpty           = errors.New("resource is empty")
	ErrDecode          = errors.New("resource cannot be decoded")
	ErrUnsupportedType = errors.New("unsupported image resource type")
	ErrUnsupported     = errors.New("resources not supported on this platform")
)

var decoders = map[string]func(io.Reader) (image.Image, error){
	TypePNG: png.Decode,
	"BMP":   bmp.Decode,
	"WEBP":  webp.Decode,
}

type finder interface {
	// find returns the bytes of resource id of type resType. The slice aliases
	// the module image and is only valid while the module stays loaded.
	find(inst winapi.HINSTANCE, id uint32, resType string) ([]byte, error)
	// loadString returns the string table entry id without copying it.
	loadString(inst winapi.HINSTANCE, id uint32) []uint16
}

var defaultFinder = newFinder()

// LoadString returns string resource id from inst, or "" if it can't be loaded.
func LoadString(inst winapi.HINSTANCE, id uint32) string {
	return loadString(defaultFinder, inst, id)
}

func loadString(f finder, inst winapi.HINSTANCE, id uint32) string {
	if f == nil {
		return ""
	}
	return string(utf16.Decode(f.loadString(inst, id)))
}

// LoadPNG decodes PNG resource id from inst into a new RGBA image owned by
// the caller. On failure the image is nil.
func LoadPNG(inst winapi.HINSTANCE, id uint32) (*image.RGBA, error) {
	return LoadImage(inst, id, TypePNG)
}

// LoadImage decodes image resource id of type resType (PNG, BMP or WEBP).
func LoadImage(inst winapi.HINSTANCE, id uint32, resType string) (*image.RGBA, error) {
	return loadImage(defaultFinder, inst, id, resType)
}

func loadImage(f finder, inst winapi.HINSTANCE, id uint32, resType string) (*image.RGBA, error) {
	resType = normalizeType(resType)
	if _, ok := decoders[resType]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, resType)
	}
	if f == nil {
		return nil, ErrUnsupported
	}
	data, err := f.find(inst, id, resType)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s %d", ErrEmpty, resType, id)
	}
	img, err := Decode(data, resType)
	if err != nil {
		log.Printf("RESOURCES: decode failed %s", logutil.Fields("type", resType, "id", id, "size", len(data), "err", err))
		return nil, err
	}
	return img, nil
}

// Decode decodes data as format into a new RGBA image. The result never
// aliases data.
func Decode(data []byte, format string) (*image.RGBA, error) {
	format = normalizeType(format)
	decode, ok := decoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, format)
	}
	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w as %s: %v", ErrDecode, format, err)
	}
	return toRGBA(img), nil
}

func normalizeType(t string) string { return strings.ToUpper(strings.TrimSpace(t)) }

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
