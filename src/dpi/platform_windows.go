//go:build windows

package dpi

import (
	"syscall"
	"unsafe"

	"github.com/lxn/win"

	"desktop-utils/src/loader"
	"desktop-utils/src/winapi"
)

type windowsPlatform struct {
	loader *loader.Loader
}

func newPlatform() platform {
	return windowsPlatform{loader: loader.New()}
}

func (p windowsPlatform) openLibrary(name string) (library, error) {
	lib, err := p.loader.Open(name)
	if err != nil {
		return nil, err
	}
	return lib, nil
}

func (windowsPlatform) monitorFromWindow(hwnd winapi.HWND) winapi.HMONITOR {
	return winapi.HMONITOR(win.MonitorFromWindow(win.HWND(hwnd), win.MONITOR_DEFAULTTOPRIMARY))
}

func (windowsPlatform) getDpiForMonitor(proc winapi.Capability, monitor winapi.HMONITOR) (uint32, uint32, winapi.HRESULT) {
	var x, y uint32
	r, _, _ := syscall.SyscallN(proc.Addr(),
		uintptr(monitor),
		mdtEffectiveDPI,
		uintptr(unsafe.Pointer(&x)),
		uintptr(unsafe.Pointer(&y)))
	return x, y, winapi.HRESULT(int32(r))
}

func (windowsPlatform) screenDPI() int32 {
	hdc := win.GetDC(0)
	if hdc == 0 {
		return BaseDPI
	}
	defer win.ReleaseDC(0, hdc)
	return win.GetDeviceCaps(hdc, win.LOGPIXELSX)
}
