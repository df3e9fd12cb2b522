// Package dpi resolves the effective DPI of a window and scales pixel
// measurements and assets to it.
package dpi

import (
	"desktop-utils/src/winapi"
)

// BaseDPI is the logical DPI at which a scale factor of 1.0 applies.
const BaseDPI = 96

// MONITOR_DPI_TYPE
const mdtEffectiveDPI = 0

const (
	shcoreDLL            = "shcore.dll"
	procGetDpiForMonitor = "GetDpiForMonitor"
)

type library interface {
	Lookup(proc string) winapi.Capability
	Close() error
}

type platform interface {
	openLibrary(name string) (library, error)
	monitorFromWindow(hwnd winapi.HWND) winapi.HMONITOR
	getDpiForMonitor(proc winapi.Capability, monitor winapi.HMONITOR) (x, y uint32, hr winapi.HRESULT)
	// screenDPI returns LOGPIXELSX of the screen device context.
	screenDPI() int32
}

// Resolver determines window DPI, preferring the per-monitor API and falling
// back to the system-wide value.
type Resolver struct {
	p platform
}

// NewResolver returns a Resolver bound to the running OS.
func NewResolver() *Resolver {
	return &Resolver{p: newPlatform()}
}

var defaultResolver = NewResolver()

// ForWindow returns the horizontal DPI of the monitor hosting hwnd using the
// default Resolver.
func ForWindow(hwnd winapi.HWND) uint16 {
	return defaultResolver.ForWindow(hwnd)
}

// ForWindow returns the horizontal DPI of the monitor hosting hwnd. It never
// fails: without per-monitor support, or when the query fails, it returns the
// system DPI. Windows not on any monitor resolve against the primary one.
func (r *Resolver) ForWindow(hwnd winapi.HWND) uint16 {
	if r.p == nil {
		return BaseDPI
	}
	if x, ok := r.monitorDPI(hwnd); ok {
		return uint16(x)
	}
	return uint16(r.p.screenDPI())
}

func (r *Resolver) monitorDPI(hwnd winapi.HWND) (uint32, bool) {
	lib, err := r.p.openLibrary(shcoreDLL)
	if err != nil {
		return 0, false
	}
	defer lib.Close()

	proc := lib.Lookup(procGetDpiForMonitor)
	if !proc.Ok() {
		return 0, false
	}
	x, _, hr := r.p.getDpiForMonitor(proc, r.p.monitorFromWindow(hwnd))
	if hr.Failed() {
		return 0, false
	}
	return x, true
}
