// Package loader loads system DLLs without consulting the application or
// current directory, so a planted library next to the executable is never
// picked up in place of the real one.
package loader

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf16"

	"desktop-utils/src/winapi"
)

// LoadLibraryExW flags.
const (
	loadWithAlteredSearchPath = 0x00000008
	loadLibrarySearchSystem32 = 0x00000800
)

var (
	// ErrNotBaseName is returned for names that carry a directory or drive.
	ErrNotBaseName = errors.New("library name must be a bare file name")
	// ErrSystemDirectory covers both a failed and an inconsistent system
	// directory query; callers can't tell them apart.
	ErrSystemDirectory = errors.New("cannot resolve system directory")
	// ErrUnsupported is returned on platforms without a Windows loader.
	ErrUnsupported = errors.New("system library loading not supported on this platform")
)

// system is the slice of the OS loader that Loader depends on.
type system interface {
	// searchSystem32 reports whether LOAD_LIBRARY_SEARCH_SYSTEM32 is usable.
	searchSystem32() winapi.Capability
	// systemDirectory fills buf with the system directory. With an empty buf
	// it returns the required size including the terminator, otherwise the
	// written length excluding it. Zero means failure.
	systemDirectory(buf []uint16) uint32
	loadLibraryEx(name string, flags uintptr) (winapi.HMODULE, error)
	getProcAddress(h winapi.HMODULE, name string) (uintptr, error)
	freeLibrary(h winapi.HMODULE) error
}

// Loader resolves libraries against the trusted system directory only.
type Loader struct {
	sys system
}

// New returns a Loader bound to the running OS.
func New() *Loader {
	return &Loader{sys: newSystem()}
}

var defaultLoader = New()

// SafeLoadSystemLibrary loads name from the system directory using the
// process default Loader. The returned handle is owned by the caller.
func SafeLoadSystemLibrary(name string) (winapi.HMODULE, error) {
	return defaultLoader.Load(name)
}

// Load loads the system library name and returns its module handle. On any
// failure the handle is 0 and nothing needs to be released.
func (l *Loader) Load(name string) (winapi.HMODULE, error) {
	if !isBaseName(name) {
		return 0, fmt.Errorf("%w: %q", ErrNotBaseName, name)
	}
	if l.sys == nil {
		return 0, ErrUnsupported
	}

	if c := l.sys.searchSystem32(); c.Ok() {
		h, err := l.sys.loadLibraryEx(name, loadLibrarySearchSystem32)
		if err != nil {
			return 0, fmt.Errorf("cannot load %s from system directory: %w", name, err)
		}
		return h, nil
	}

	path, err := l.systemPath(name)
	if err != nil {
		log.Printf("LOADER: %s: %v", name, err)
		return 0, err
	}
	h, err := l.sys.loadLibraryEx(path, loadWithAlteredSearchPath)
	if err != nil {
		return 0, fmt.Errorf("cannot load %s: %w", path, err)
	}
	return h, nil
}

// systemPath builds the fully qualified path of name inside the system
// directory for loaders that lack restricted search support.
func (l *Loader) systemPath(name string) (string, error) {
	size := l.sys.systemDirectory(nil)
	if size == 0 {
		return "", ErrSystemDirectory
	}
	buf := make([]uint16, size)
	n := l.sys.systemDirectory(buf)
	if n == 0 || int(n) >= len(buf) {
		return "", ErrSystemDirectory
	}
	return joinSystemPath(string(utf16.Decode(buf[:n])), name), nil
}

// joinSystemPath appends name to dir with exactly one backslash between them.
func joinSystemPath(dir, name string) string {
	return strings.TrimRight(dir, `\/`) + `\` + name
}

func isBaseName(s string) bool {
	if len(s) == 0 {
		return false
	}
	return !strings.ContainsAny(s, `:/\`)
}
