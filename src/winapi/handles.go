package winapi

// Opaque OS handles. Each is a distinct type so a window can't be passed where
// a monitor or module is expected without an explicit conversion.
type (
	HWND      uintptr
	HMONITOR  uintptr
	HMODULE   uintptr
	HINSTANCE uintptr
	HDC       uintptr
)

// Instance returns the module as an instance handle. They refer to the same
// loaded image base.
func (h HMODULE) Instance() HINSTANCE { return HINSTANCE(h) }

// Module returns the instance as a module handle.
func (h HINSTANCE) Module() HMODULE { return HMODULE(h) }

// Valid reports whether the handle is non-null.
func (h HMODULE) Valid() bool { return h != 0 }

// HRESULT is a COM-style status code.
type HRESULT int32

const (
	S_OK   HRESULT = 0
	E_FAIL HRESULT = -0x7fffbffb // 0x80004005
)

func (hr HRESULT) Succeeded() bool { return hr >= 0 }

func (hr HRESULT) Failed() bool { return hr < 0 }
