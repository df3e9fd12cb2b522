package dpi

import (
	"fmt"
	"log"
	"strings"
)

// Awareness is the DPI awareness level of the process.
type Awareness int

const (
	Unaware Awareness = iota
	SystemAware
	PerMonitorAware
	PerMonitorAwareV2
)

func (a Awareness) String() string {
	switch a {
	case SystemAware:
		return "system"
	case PerMonitorAware:
		return "per-monitor"
	case PerMonitorAwareV2:
		return "per-monitor-v2"
	default:
		return "none"
	}
}

// ParseAwareness maps a configuration value to the highest awareness level
// that should be requested.
func ParseAwareness(s string) (Awareness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "per-monitor", "per-monitor-v2", "permonitor":
		return PerMonitorAwareV2, nil
	case "system":
		return SystemAware, nil
	case "none", "unaware", "off":
		return Unaware, nil
	}
	return Unaware, fmt.Errorf("unknown DPI awareness %q", s)
}

// awarenessSetter wraps the OS calls that raise process DPI awareness, newest
// first. Each reports whether the entry point exists and whether it
// succeeded.
type awarenessSetter interface {
	// setContext calls user32!SetProcessDpiAwarenessContext with the
	// per-monitor (v2 or v1) context.
	setContext(v2 bool) (found, ok bool)
	// setShcore calls shcore!SetProcessDpiAwareness.
	setShcore(perMonitor bool) (found, ok bool)
	// setSystemAware calls user32!SetProcessDPIAware.
	setSystemAware() (found, ok bool)
}

var defaultSetter = newAwarenessSetter()

// EnableAwareness raises the process DPI awareness as close to want as the OS
// allows and returns the level that took effect. It must run before any
// window is created.
func EnableAwareness(want Awareness) Awareness {
	return enableAwareness(defaultSetter, want)
}

func enableAwareness(s awarenessSetter, want Awareness) Awareness {
	if want == Unaware || s == nil {
		return Unaware
	}

	if want >= PerMonitorAware {
		// Windows 10 1703+
		if want >= PerMonitorAwareV2 {
			if found, ok := s.setContext(true); ok {
				log.Printf("DPI: Set per-monitor v2 DPI awareness")
				return PerMonitorAwareV2
			} else if !found {
				log.Printf("DPI: SetProcessDpiAwarenessContext not available, trying fallback")
			}
		}
		if _, ok := s.setContext(false); ok {
			log.Printf("DPI: Set per-monitor DPI awareness")
			return PerMonitorAware
		}
	}

	// Windows 8.1+
	perMonitor := want >= PerMonitorAware
	if found, ok := s.setShcore(perMonitor); ok {
		got := SystemAware
		if perMonitor {
			got = PerMonitorAware
		}
		log.Printf("DPI: Set %s DPI awareness via Shcore", got)
		return got
	} else if !found {
		log.Printf("DPI: Shcore.SetProcessDpiAwareness not available, trying fallback")
	}

	// Vista+
	found, ok := s.setSystemAware()
	switch {
	case ok:
		log.Printf("DPI: Set system DPI awareness (fallback)")
		return SystemAware
	case found:
		log.Printf("DPI: SetProcessDPIAware failed")
	default:
		log.Printf("DPI: SetProcessDPIAware not available, no DPI awareness set")
	}
	return Unaware
}
