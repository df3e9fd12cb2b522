package dpi

import (
	"reflect"
	"testing"
)

type setterResult struct{ found, ok bool }

type fakeSetter struct {
	context   map[bool]setterResult
	shcore    setterResult
	system    setterResult
	calls     []string
	shcorePer bool
}

func (f *fakeSetter) setContext(v2 bool) (bool, bool) {
	if v2 {
		f.calls = append(f.calls, "context-v2")
	} else {
		f.calls = append(f.calls, "context-v1")
	}
	r := f.context[v2]
	return r.found, r.ok
}

func (f *fakeSetter) setShcore(perMonitor bool) (bool, bool) {
	f.calls = append(f.calls, "shcore")
	f.shcorePer = perMonitor
	return f.shcore.found, f.shcore.ok
}

func (f *fakeSetter) setSystemAware() (bool, bool) {
	f.calls = append(f.calls, "system")
	return f.system.found, f.system.ok
}

func TestEnableAwarenessCascade(t *testing.T) {
	ok := setterResult{found: true, ok: true}
	failed := setterResult{found: true}
	missing := setterResult{}

	tests := []struct {
		name      string
		want      Awareness
		context   map[bool]setterResult
		shcore    setterResult
		system    setterResult
		got       Awareness
		calls     []string
		shcorePer bool
	}{
		{
			name:    "Per-monitor v2 context",
			want:    PerMonitorAwareV2,
			context: map[bool]setterResult{true: ok},
			got:     PerMonitorAwareV2,
			calls:   []string{"context-v2"},
		},
		{
			name:    "v2 context rejected falls back to v1 context",
			want:    PerMonitorAwareV2,
			context: map[bool]setterResult{true: failed, false: ok},
			got:     PerMonitorAware,
			calls:   []string{"context-v2", "context-v1"},
		},
		{
			name:      "No context API uses shcore per-monitor",
			want:      PerMonitorAwareV2,
			context:   map[bool]setterResult{true: missing, false: missing},
			shcore:    ok,
			got:       PerMonitorAware,
			calls:     []string{"context-v2", "context-v1", "shcore"},
			shcorePer: true,
		},
		{
			name:   "System request skips context API",
			want:   SystemAware,
			shcore: ok,
			got:    SystemAware,
			calls:  []string{"shcore"},
		},
		{
			name:      "Shcore failure falls back to SetProcessDPIAware",
			want:      PerMonitorAwareV2,
			shcore:    failed,
			system:    ok,
			got:       SystemAware,
			calls:     []string{"context-v2", "context-v1", "shcore", "system"},
			shcorePer: true,
		},
		{
			name:   "Nothing available",
			want:   SystemAware,
			shcore: missing,
			system: missing,
			got:    Unaware,
			calls:  []string{"shcore", "system"},
		},
		{
			name:   "SetProcessDPIAware fails",
			want:   SystemAware,
			system: failed,
			got:    Unaware,
			calls:  []string{"shcore", "system"},
		},
		{
			name:  "Unaware requests nothing",
			want:  Unaware,
			got:   Unaware,
			calls: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeSetter{context: tt.context, shcore: tt.shcore, system: tt.system}
			if got := enableAwareness(f, tt.want); got != tt.got {
				t.Errorf("enableAwareness(%v) = %v, want %v", tt.want, got, tt.got)
			}
			if !reflect.DeepEqual(f.calls, tt.calls) {
				t.Errorf("calls = %v, want %v", f.calls, tt.calls)
			}
			if f.shcorePer != tt.shcorePer {
				t.Errorf("shcore per-monitor = %v, want %v", f.shcorePer, tt.shcorePer)
			}
		})
	}
}

func TestEnableAwarenessWithoutSetter(t *testing.T) {
	if got := enableAwareness(nil, PerMonitorAwareV2); got != Unaware {
		t.Errorf("Expected Unaware without OS support, got %v", got)
	}
}
