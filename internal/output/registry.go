package output

import (
	"github.com/IshantPundir/aurora/internal/geometry"
)

// Registry tracks the registered outputs in registration order. It is owned
// by the compositor loop; no concurrent mutation occurs during a
// composition pass.
type Registry struct {
	outputs []*Output
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers an output. Re-adding an already-registered output is a
// no-op.
func (r *Registry) Add(o *Output) {
	if o == nil {
		return
	}
	for _, existing := range r.outputs {
		if existing == o {
			return
		}
	}
	r.outputs = append(r.outputs, o)
}

// Remove unregisters an output.
func (r *Registry) Remove(o *Output) {
	for i, existing := range r.outputs {
		if existing == o {
			r.outputs = append(r.outputs[:i], r.outputs[i+1:]...)
			return
		}
	}
}

// Outputs returns the registered outputs in registration order.
func (r *Registry) Outputs() []*Output {
	out := make([]*Output, len(r.outputs))
	copy(out, r.outputs)
	return out
}

// Len returns the number of registered outputs.
func (r *Registry) Len() int {
	return len(r.outputs)
}

// PrimaryPolicy selects the output layout decisions target. It is passed to
// callers explicitly rather than implied by iteration order.
type PrimaryPolicy interface {
	Primary(r *Registry) *Output
}

// PointerPolicy picks the output under the pointer, falling back to the
// first registered output when the pointer is outside every output. A nil
// pointer source always falls back.
type PointerPolicy struct {
	// Pointer returns the current pointer location in logical coordinates.
	Pointer func() (geometry.Point, bool)
}

// Primary implements PrimaryPolicy.
func (p PointerPolicy) Primary(r *Registry) *Output {
	if r == nil || len(r.outputs) == 0 {
		return nil
	}
	if p.Pointer != nil {
		if loc, ok := p.Pointer(); ok {
			for _, o := range r.outputs {
				if o.Geometry().Contains(loc) {
					return o
				}
			}
		}
	}
	return r.outputs[0]
}

// FirstPolicy always picks the first registered output.
type FirstPolicy struct{}

// Primary implements PrimaryPolicy.
func (FirstPolicy) Primary(r *Registry) *Output {
	if r == nil || len(r.outputs) == 0 {
		return nil
	}
	return r.outputs[0]
}
