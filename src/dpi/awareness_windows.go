//go:build windows

package dpi

import (
	"log"
	"syscall"

	"golang.org/x/sys/windows"

	"desktop-utils/src/loader"
)

var (
	user32                             = windows.NewLazySystemDLL("user32.dll")
	procSetProcessDpiAwarenessContext  = user32.NewProc("SetProcessDpiAwarenessContext")
	procSetProcessDPIAware             = user32.NewProc("SetProcessDPIAware")
	dpiAwarenessContextPerMonitorAware = ^uintptr(2) // (HANDLE)-3
	dpiAwarenessContextPerMonitorV2    = ^uintptr(3) // (HANDLE)-4
)

// PROCESS_DPI_AWARENESS
const (
	processSystemDPIAware     = 1
	processPerMonitorDPIAware = 2
)

type windowsSetter struct {
	loader *loader.Loader
}

func newAwarenessSetter() awarenessSetter {
	return windowsSetter{loader: loader.New()}
}

func (windowsSetter) setContext(v2 bool) (bool, bool) {
	if procSetProcessDpiAwarenessContext.Find() != nil {
		return false, false
	}
	ctx := dpiAwarenessContextPerMonitorAware
	if v2 {
		ctx = dpiAwarenessContextPerMonitorV2
	}
	r, _, _ := procSetProcessDpiAwarenessContext.Call(ctx)
	return true, r != 0
}

func (s windowsSetter) setShcore(perMonitor bool) (bool, bool) {
	lib, err := s.loader.Open(shcoreDLL)
	if err != nil {
		return false, false
	}
	defer lib.Close()

	proc := lib.Lookup("SetProcessDpiAwareness")
	if !proc.Ok() {
		return false, false
	}
	level := uintptr(processSystemDPIAware)
	if perMonitor {
		level = processPerMonitorDPIAware
	}
	r, _, _ := syscall.SyscallN(proc.Addr(), level)
	if r != 0 {
		log.Printf("DPI: SetProcessDpiAwareness(%d) failed, error code: %#x", level, r)
		return true, false
	}
	return true, true
}

func (windowsSetter) setSystemAware() (bool, bool) {
	if procSetProcessDPIAware.Find() != nil {
		return false, false
	}
	r, _, _ := procSetProcessDPIAware.Call()
	return true, r != 0
}
