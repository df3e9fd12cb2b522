package winapi

import (
	"errors"
	"fmt"
	"sync"
)

// ErrAbsent is returned by Capability.Err when no reason was recorded.
var ErrAbsent = errors.New("capability not available")

// Capability is a resolved OS entry point that may or may not exist on the
// running system. Callers branch on Ok instead of checking raw addresses.
type Capability struct {
	name   string
	addr   uintptr
	reason error
}

// Present returns a capability backed by addr. A zero addr yields an absent
// capability.
func Present(name string, addr uintptr) Capability {
	if addr == 0 {
		return Absent(name, nil)
	}
	return Capability{name: name, addr: addr}
}

// Absent returns a capability that is not available, keeping why for logging.
func Absent(name string, reason error) Capability {
	if reason == nil {
		reason = ErrAbsent
	}
	return Capability{name: name, reason: reason}
}

func (c Capability) Ok() bool { return c.addr != 0 }

func (c Capability) Name() string { return c.name }

// Addr returns the entry point address, or 0 when absent.
func (c Capability) Addr() uintptr { return c.addr }

// Err returns nil when present and the recorded reason otherwise.
func (c Capability) Err() error {
	if c.Ok() {
		return nil
	}
	return c.reason
}

func (c Capability) String() string {
	if c.Ok() {
		return fmt.Sprintf("%s@0x%x", c.name, c.addr)
	}
	return fmt.Sprintf("%s (absent: %v)", c.name, c.reason)
}

// Probe wraps resolve so it runs at most once per process. Every call of the
// returned function yields the same Capability.
func Probe(name string, resolve func() (uintptr, error)) func() Capability {
	return sync.OnceValue(func() Capability {
		addr, err := resolve()
		if err != nil {
			return Absent(name, err)
		}
		return Present(name, addr)
	})
}
