package dpi

import (
	"errors"
	"testing"

	"desktop-utils/src/winapi"
)

type fakeLibrary struct {
	procs  map[string]uintptr
	closed int
}

func (l *fakeLibrary) Lookup(proc string) winapi.Capability {
	return winapi.Present(proc, l.procs[proc])
}

func (l *fakeLibrary) Close() error {
	l.closed++
	return nil
}

type fakePlatform struct {
	lib     *fakeLibrary
	openErr error
	dpiX    uint32
	dpiY    uint32
	hr      winapi.HRESULT
	system  int32

	opened       []string
	monitorFor   []winapi.HWND
	queried      []winapi.HMONITOR
	screenCalled int
}

func (p *fakePlatform) openLibrary(name string) (library, error) {
	p.opened = append(p.opened, name)
	if p.openErr != nil {
		return nil, p.openErr
	}
	return p.lib, nil
}

func (p *fakePlatform) monitorFromWindow(hwnd winapi.HWND) winapi.HMONITOR {
	p.monitorFor = append(p.monitorFor, hwnd)
	return winapi.HMONITOR(0x65537)
}

func (p *fakePlatform) getDpiForMonitor(proc winapi.Capability, monitor winapi.HMONITOR) (uint32, uint32, winapi.HRESULT) {
	p.queried = append(p.queried, monitor)
	return p.dpiX, p.dpiY, p.hr
}

func (p *fakePlatform) screenDPI() int32 {
	p.screenCalled++
	return p.system
}

func withShcore() *fakeLibrary {
	return &fakeLibrary{procs: map[string]uintptr{procGetDpiForMonitor: 0x1234}}
}

func TestForWindowPerMonitor(t *testing.T) {
	lib := withShcore()
	p := &fakePlatform{lib: lib, dpiX: 120, dpiY: 120, hr: winapi.S_OK, system: 96}
	r := &Resolver{p: p}

	if got := r.ForWindow(winapi.HWND(0xbeef)); got != 120 {
		t.Fatalf("Expected 120, got %d", got)
	}
	if p.screenCalled != 0 {
		t.Errorf("Expected no fallback query, got %d", p.screenCalled)
	}
	if len(p.opened) != 1 || p.opened[0] != shcoreDLL {
		t.Errorf("Expected shcore.dll to be opened once, got %v", p.opened)
	}
	if len(p.monitorFor) != 1 || p.monitorFor[0] != 0xbeef {
		t.Errorf("Expected monitor lookup for the window, got %v", p.monitorFor)
	}
	if lib.closed != 1 {
		t.Errorf("Expected shcore.dll closed once, got %d", lib.closed)
	}
}

func TestForWindowFallback(t *testing.T) {
	tests := []struct {
		name       string
		p          *fakePlatform
		wantClosed int
	}{
		{
			name: "Library unavailable",
			p:    &fakePlatform{openErr: errors.New("not found"), system: 96},
		},
		{
			name:       "Export missing",
			p:          &fakePlatform{lib: &fakeLibrary{}, system: 96},
			wantClosed: 1,
		},
		{
			name:       "Query fails",
			p:          &fakePlatform{lib: withShcore(), dpiX: 144, hr: winapi.E_FAIL, system: 96},
			wantClosed: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Resolver{p: tt.p}
			if got := r.ForWindow(0); got != 96 {
				t.Fatalf("Expected fallback 96, got %d", got)
			}
			if tt.p.screenCalled != 1 {
				t.Errorf("Expected one fallback query, got %d", tt.p.screenCalled)
			}
			if tt.p.lib != nil && tt.p.lib.closed != tt.wantClosed {
				t.Errorf("Expected library closed %d times, got %d", tt.wantClosed, tt.p.lib.closed)
			}
		})
	}
}

func TestForWindowTruncatesToWord(t *testing.T) {
	p := &fakePlatform{lib: withShcore(), dpiX: 0x10000 + 144, hr: winapi.S_OK}
	r := &Resolver{p: p}
	if got := r.ForWindow(1); got != 144 {
		t.Fatalf("Expected truncation to 144, got %d", got)
	}
}

func TestForWindowSameUnitAcrossBranches(t *testing.T) {
	modern := &Resolver{p: &fakePlatform{lib: withShcore(), dpiX: 96, dpiY: 96, hr: winapi.S_OK}}
	legacy := &Resolver{p: &fakePlatform{openErr: errors.New("missing"), system: 96}}
	if a, b := modern.ForWindow(7), legacy.ForWindow(7); a != b {
		t.Fatalf("Expected identical results for the same monitor, got %d and %d", a, b)
	}
}

func TestForWindowWithoutPlatform(t *testing.T) {
	r := &Resolver{}
	if got := r.ForWindow(0); got != BaseDPI {
		t.Fatalf("Expected %d, got %d", BaseDPI, got)
	}
}
