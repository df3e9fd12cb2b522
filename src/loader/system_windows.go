//go:build windows

package loader

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"desktop-utils/src/winapi"
)

var (
	kernel32                = windows.NewLazySystemDLL("kernel32.dll")
	procGetSystemDirectoryW = kernel32.NewProc("GetSystemDirectoryW")
)

// SetDefaultDllDirectories ships with Windows 8 and with KB2533623 on Vista
// and 7. Its presence means LOAD_LIBRARY_SEARCH_SYSTEM32 is honored.
var searchSystem32 = winapi.Probe("SetDefaultDllDirectories", func() (uintptr, error) {
	name, err := windows.UTF16PtrFromString("kernel32.dll")
	if err != nil {
		return 0, err
	}
	var h windows.Handle
	if err := windows.GetModuleHandleEx(windows.GET_MODULE_HANDLE_EX_FLAG_UNCHANGED_REFCOUNT, name, &h); err != nil {
		return 0, err
	}
	return windows.GetProcAddress(h, "SetDefaultDllDirectories")
})

type windowsSystem struct{}

func newSystem() system { return windowsSystem{} }

func (windowsSystem) searchSystem32() winapi.Capability { return searchSystem32() }

func (windowsSystem) systemDirectory(buf []uint16) uint32 {
	var p *uint16
	if len(buf) > 0 {
		p = &buf[0]
	}
	r, _, _ := procGetSystemDirectoryW.Call(uintptr(unsafe.Pointer(p)), uintptr(len(buf)))
	return uint32(r)
}

func (windowsSystem) loadLibraryEx(name string, flags uintptr) (winapi.HMODULE, error) {
	h, err := windows.LoadLibraryEx(name, 0, flags)
	if err != nil {
		return 0, err
	}
	return winapi.HMODULE(h), nil
}

func (windowsSystem) getProcAddress(h winapi.HMODULE, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(h), name)
}

func (windowsSystem) freeLibrary(h winapi.HMODULE) error {
	return windows.FreeLibrary(windows.Handle(h))
}
