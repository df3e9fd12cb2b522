package loader

import (
	"errors"
	"fmt"

	"desktop-utils/src/winapi"
)

// ErrClosed is reported by Lookup after Close.
var ErrClosed = errors.New("library already closed")

// Library is a loaded system DLL. It must be closed by whoever opened it.
type Library struct {
	name   string
	handle winapi.HMODULE
	sys    system
}

// Open loads name with the default Loader and wraps the handle.
func Open(name string) (*Library, error) {
	return defaultLoader.Open(name)
}

// Open loads name and wraps the handle so it can be released with Close.
func (l *Loader) Open(name string) (*Library, error) {
	h, err := l.Load(name)
	if err != nil {
		return nil, err
	}
	return &Library{name: name, handle: h, sys: l.sys}, nil
}

func (lib *Library) Name() string { return lib.name }

// Handle returns the module handle, or 0 once closed.
func (lib *Library) Handle() winapi.HMODULE { return lib.handle }

// Lookup resolves an exported function. A missing export is an absent
// capability, not an error.
func (lib *Library) Lookup(proc string) winapi.Capability {
	if lib.handle == 0 {
		return winapi.Absent(proc, ErrClosed)
	}
	addr, err := lib.sys.getProcAddress(lib.handle, proc)
	if err != nil {
		return winapi.Absent(proc, fmt.Errorf("%s!%s: %w", lib.name, proc, err))
	}
	return winapi.Present(proc, addr)
}

// Close frees the library. Calling it again is a no-op.
func (lib *Library) Close() error {
	if lib.handle == 0 {
		return nil
	}
	h := lib.handle
	lib.handle = 0
	if err := lib.sys.freeLibrary(h); err != nil {
		return fmt.Errorf("cannot free %s: %w", lib.name, err)
	}
	return nil
}
