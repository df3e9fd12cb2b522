//go:build windows

package resources

import (
	"fmt"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"desktop-utils/src/winapi"
)

type windowsFinder struct{}

func newFinder() finder { return windowsFinder{} }

func (windowsFinder) find(inst winapi.HINSTANCE, id uint32, resType string) ([]byte, error) {
	if id == 0 || id > 0xffff {
		return nil, fmt.Errorf("%w: %s %d", ErrNotFound, resType, id)
	}
	mod := windows.Handle(inst)
	res, err := windows.FindResource(mod, windows.ResourceID(id), resType)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %d: %v", ErrNotFound, resType, id, err)
	}
	if size, err := windows.SizeofResource(mod, res); err != nil || size == 0 {
		return nil, fmt.Errorf("%w: %s %d", ErrEmpty, resType, id)
	}
	data, err := windows.LoadResourceData(mod, res)
	if err != nil {
		return nil, fmt.Errorf("cannot load %s resource %d: %w", resType, id, err)
	}
	return data, nil
}

func (windowsFinder) loadString(inst winapi.HINSTANCE, id uint32) []uint16 {
	// With a zero buffer length LoadStringW stores a read-only pointer to the
	// resource, which is not null terminated, and returns its length.
	var p *uint16
	n := win.LoadString(win.HINSTANCE(inst), id, (*uint16)(unsafe.Pointer(&p)), 0)
	if n <= 0 || p == nil {
		return nil
	}
	return unsafe.Slice(p, n)
}

// ModuleHandle returns the instance to load resources from. An empty path
// means the running executable. Otherwise path is mapped as a resource-only
// image. The returned release function must be called when done.
func ModuleHandle(path string) (winapi.HINSTANCE, func(), error) {
	if path == "" {
		var h windows.Handle
		if err := windows.GetModuleHandleEx(windows.GET_MODULE_HANDLE_EX_FLAG_UNCHANGED_REFCOUNT, nil, &h); err != nil {
			return 0, func() {}, fmt.Errorf("cannot get executable module: %w", err)
		}
		return winapi.HINSTANCE(h), func() {}, nil
	}
	h, err := windows.LoadLibraryEx(path, 0, windows.LOAD_LIBRARY_AS_DATAFILE|windows.LOAD_LIBRARY_AS_IMAGE_RESOURCE)
	if err != nil {
		return 0, func() {}, fmt.Errorf("cannot map %s: %w", path, err)
	}
	return winapi.HINSTANCE(h), func() { _ = windows.FreeLibrary(h) }, nil
}
