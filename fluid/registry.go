package fluid

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownFluid is returned by Lookup when the name is not registered.
var ErrUnknownFluid = errors.New("unknown fluid")

// Registry is a read-only table of fluid constants.
// It is built once and shared; concurrent Lookup calls need no locking.
type Registry struct {
	fluids map[string]Parameters
	names  []string
}

// NewRegistry builds a registry from the given fluids. Names are trimmed,
// matched case-insensitively and must be unique.
func NewRegistry(fluids ...Parameters) (*Registry, error) {
	r := &Registry{
		fluids: make(map[string]Parameters, len(fluids)),
		names:  make([]string, 0, len(fluids)),
	}
	for _, f := range fluids {
		f.Name = strings.TrimSpace(f.Name)
		if err := f.Validate(); err != nil {
			return nil, err
		}
		key := strings.ToLower(f.Name)
		if _, ok := r.fluids[key]; ok {
			return nil, fmt.Errorf("fluid %q registered twice", f.Name)
		}
		if f.VaporPressure != nil {
			// copy so callers cannot mutate the registered correlation
			a := *f.VaporPressure
			f.VaporPressure = &a
		}
		r.fluids[key] = f
		r.names = append(r.names, f.Name)
	}
	sort.Strings(r.names)
	return r, nil
}

// Lookup returns the constants registered under name.
func (r *Registry) Lookup(name string) (Parameters, error) {
	f, ok := r.fluids[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Parameters{}, fmt.Errorf("%w: %q", ErrUnknownFluid, name)
	}
	if f.VaporPressure != nil {
		a := *f.VaporPressure
		f.VaporPressure = &a
	}
	return f, nil
}

// Names returns the registered fluid names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered fluids.
func (r *Registry) Len() int {
	return len(r.names)
}
