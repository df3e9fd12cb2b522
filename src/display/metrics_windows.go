//go:build windows

package display

import (
	"log"

	"github.com/lxn/win"
)

// LogConfiguration logs monitor count and virtual/primary screen metrics as
// seen by the current DPI awareness of the process.
func LogConfiguration() {
	log.Printf("MONITOR: Detected %d monitors", win.GetSystemMetrics(win.SM_CMONITORS))

	vx := win.GetSystemMetrics(win.SM_XVIRTUALSCREEN)
	vy := win.GetSystemMetrics(win.SM_YVIRTUALSCREEN)
	vw := win.GetSystemMetrics(win.SM_CXVIRTUALSCREEN)
	vh := win.GetSystemMetrics(win.SM_CYVIRTUALSCREEN)
	log.Printf("MONITOR: Virtual screen - x:%d y:%d w:%d h:%d", vx, vy, vw, vh)

	pw := win.GetSystemMetrics(win.SM_CXSCREEN)
	ph := win.GetSystemMetrics(win.SM_CYSCREEN)
	log.Printf("MONITOR: Primary screen - w:%d h:%d", pw, ph)
}
