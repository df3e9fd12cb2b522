//go:build !windows

package resources

import "desktop-utils/src/winapi"

func newFinder() finder { return nil }

// ModuleHandle is not available outside Windows.
func ModuleHandle(path string) (winapi.HINSTANCE, func(), error) {
	return 0, func() {}, ErrUnsupported
}
