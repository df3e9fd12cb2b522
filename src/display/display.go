package display

import (
	"fmt"
	"image"
	"strings"

	"github.com/kbinani/screenshot"
)

// Monitor is one active display in virtual-screen coordinates.
type Monitor struct {
	Index  int             `json:"index"`
	Bounds image.Rectangle `json:"bounds"`
}

func (m Monitor) Primary() bool { return m.Bounds.Min == (image.Point{}) }

// List returns the active displays.
func List() ([]Monitor, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, fmt.Errorf("no active displays found")
	}
	monitors := make([]Monitor, 0, n)
	for i := 0; i < n; i++ {
		monitors = append(monitors, Monitor{Index: i, Bounds: screenshot.GetDisplayBounds(i)})
	}
	return monitors, nil
}

// VirtualBounds returns the union of all monitor bounds.
func VirtualBounds(monitors []Monitor) image.Rectangle {
	var union image.Rectangle
	for _, m := range monitors {
		union = union.Union(m.Bounds)
	}
	return union
}

// Describe renders monitors one per line.
func Describe(monitors []Monitor) string {
	var b strings.Builder
	for _, m := range monitors {
		primary := ""
		if m.Primary() {
			primary = " (primary)"
		}
		fmt.Fprintf(&b, "MONITOR %d: x:%d y:%d w:%d h:%d%s\n",
			m.Index, m.Bounds.Min.X, m.Bounds.Min.Y, m.Bounds.Dx(), m.Bounds.Dy(), primary)
	}
	if len(monitors) > 1 {
		v := VirtualBounds(monitors)
		fmt.Fprintf(&b, "MONITOR: Virtual screen - x:%d y:%d w:%d h:%d\n", v.Min.X, v.Min.Y, v.Dx(), v.Dy())
	}
	return b.String()
}
