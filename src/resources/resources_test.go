package resources

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"
	"unicode/utf16"

	"golang.org/x/image/bmp"

	"desktop-utils/src/winapi"
)

type resKey struct {
	id      uint32
	resType string
}

type fakeFinder struct {
	data    map[resKey][]byte
	strings map[uint32]string
}

func (f *fakeFinder) find(inst winapi.HINSTANCE, id uint32, resType string) ([]byte, error) {
	d, ok := f.data[resKey{id, resType}]
	if !ok {
		return nil, fmt.Errorf("%w: %s %d", ErrNotFound, resType, id)
	}
	return d, nil
}

func (f *fakeFinder) loadString(inst winapi.HINSTANCE, id uint32) []uint16 {
	s, ok := f.strings[id]
	if !ok {
		return nil
	}
	return utf16.Encode([]rune(s))
}

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 100), B: 0x40, A: 0xff})
		}
	}
	return img
}

func encodePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func encodeBMP(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, testImage()); err != nil {
		t.Fatalf("bmp.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestLoadImage(t *testing.T) {
	f := &fakeFinder{data: map[resKey][]byte{
		{101, TypePNG}: encodePNG(t),
		{102, TypePNG}: {},
		{103, TypePNG}: []byte("not a png at all"),
		{104, "BMP"}:   encodeBMP(t),
	}}

	tests := []struct {
		name    string
		id      uint32
		resType string
		wantErr error
	}{
		{name: "Valid PNG", id: 101, resType: TypePNG},
		{name: "Missing resource", id: 999, resType: TypePNG, wantErr: ErrNotFound},
		{name: "Empty resource", id: 102, resType: TypePNG, wantErr: ErrEmpty},
		{name: "Corrupt resource", id: 103, resType: TypePNG, wantErr: ErrDecode},
		{name: "BMP resource", id: 104, resType: "bmp"},
		{name: "Wrong type", id: 104, resType: TypePNG, wantErr: ErrNotFound},
		{name: "Unknown type", id: 101, resType: "GIF", wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := loadImage(f, 0, tt.id, tt.resType)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				if img != nil {
					t.Fatalf("Expected nil image on failure, got %v", img.Bounds())
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if img.Bounds() != image.Rect(0, 0, 4, 3) {
				t.Fatalf("Expected 4x3 image, got %v", img.Bounds())
			}
			if c := img.RGBAAt(2, 1); c.R != 120 || c.G != 100 || c.B != 0x40 || c.A != 0xff {
				t.Errorf("Unexpected pixel %v", c)
			}
		})
	}
}

func TestLoadImageDoesNotAliasResource(t *testing.T) {
	data := encodePNG(t)
	f := &fakeFinder{data: map[resKey][]byte{{1, TypePNG}: data}}

	img, err := loadImage(f, 0, 1, TypePNG)
	if err != nil {
		t.Fatalf("loadImage: %v", err)
	}
	before := img.RGBAAt(0, 0)
	for i := range data {
		data[i] = 0
	}
	if after := img.RGBAAt(0, 0); after != before {
		t.Fatalf("Decoded image changed with resource memory: %v -> %v", before, after)
	}
}

func TestLoadImageWithoutPlatform(t *testing.T) {
	img, err := loadImage(nil, 0, 1, TypePNG)
	if !errors.Is(err, ErrUnsupported) || img != nil {
		t.Fatalf("Expected ErrUnsupported and nil image, got %v, %v", img, err)
	}
}

func TestLoadString(t *testing.T) {
	f := &fakeFinder{strings: map[uint32]string{
		1: "Setup Wizard",
		2: "Größe: 𝄞",
		3: "",
	}}

	tests := []struct {
		id   uint32
		want string
	}{
		{id: 1, want: "Setup Wizard"},
		{id: 2, want: "Größe: 𝄞"},
		{id: 3, want: ""},
		{id: 42, want: ""},
	}
	for _, tt := range tests {
		if got := loadString(f, 0, tt.id); got != tt.want {
			t.Errorf("loadString(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}

	if got := loadString(nil, 0, 1); got != "" {
		t.Errorf("Expected empty string without platform, got %q", got)
	}
}

func TestDecodeKeepsRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if got := toRGBA(src); got != src {
		t.Error("Expected zero-origin RGBA to be returned as is")
	}
	offset := image.NewRGBA(image.Rect(5, 5, 7, 7))
	offset.SetRGBA(5, 5, color.RGBA{R: 9, A: 0xff})
	got := toRGBA(offset)
	if got.Bounds() != image.Rect(0, 0, 2, 2) || got.RGBAAt(0, 0).R != 9 {
		t.Errorf("Expected offset image rebased to origin, got %v", got.Bounds())
	}
}

func TestDecodeNormalizesFormat(t *testing.T) {
	data := encodePNG(t)
	for _, format := range []string{"PNG", "png", " png", "Png\t"} {
		img, err := Decode(data, format)
		if err != nil {
			t.Fatalf("Decode(%q): %v", format, err)
		}
		if img.Bounds().Dx() != 4 {
			t.Fatalf("Decode(%q): unexpected bounds %v", format, img.Bounds())
		}
	}
	if _, err := Decode(data, "gif"); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("Expected ErrUnsupportedType, got %v", err)
	}
}
