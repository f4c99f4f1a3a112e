package render

import (
	"errors"
	"fmt"

	"github.com/IshantPundir/aurora/internal/geometry"
	"github.com/IshantPundir/aurora/internal/output"
	"github.com/IshantPundir/aurora/internal/shell"
)

// Clear colors used by the composer. The fullscreen path clears to fully
// transparent so the override window owns every pixel.
var (
	ClearColor           = shell.Color{0.0, 0.0, 0.0, 1.0}
	ClearColorFullscreen = shell.Color{0.0, 0.0, 0.0, 0.0}
)

// ErrContextLost indicates the render backend lost its context. The whole
// pipeline must be reinitialized by the external layer; retrying the frame
// is pointless.
var ErrContextLost = errors.New("render: context lost")

// Renderer is the backend that actually paints. Damage lists the regions
// that changed; the renderer may repaint more but never needs to.
type Renderer interface {
	Render(elements []shell.Element, damage []geometry.Rect, clear shell.Color) error
}

// ElementState records how one element was handled during a render pass.
// Used afterwards for presentation-feedback attribution and
// last-shown-on-output tracking.
type ElementState struct {
	Kind      shell.ElementKind
	Geometry  geometry.Rect
	ZIndex    int
	Presented bool
}

// ElementStates maps element identity (source, kind) to its render state.
type ElementStates map[ElementKey]ElementState

// ElementKey is the per-frame identity of an element.
type ElementKey struct {
	Source uint64
	Kind   shell.ElementKind
}

// RenderOutputResult is the outcome of a damage-tracked render pass.
// Damage nil means nothing needed repainting; a non-nil Damage is the
// minimal coalesced changed-region set that was painted.
type RenderOutputResult struct {
	Damage []geometry.Rect
	States ElementStates
}

type elementSnapshot struct {
	geom   geometry.Rect
	commit uint64
	alpha  float32
}

type frameSnapshot map[ElementKey]elementSnapshot

// maxDamageHistory bounds how many past frames the tracker can diff
// against. An age beyond the history forces a full repaint.
const maxDamageHistory = 4

// OutputDamageTracker computes the minimal changed-region set between the
// current element list and the frame presented `age` frames ago, and drives
// the renderer with it. History advances only on successful renders, so a
// failed frame leaves the buffer bookkeeping untouched.
type OutputDamageTracker struct {
	out     *output.Output
	history []frameSnapshot
}

// NewOutputDamageTracker creates a tracker bound to one output.
func NewOutputDamageTracker(out *output.Output) *OutputDamageTracker {
	return &OutputDamageTracker{out: out}
}

// Reset discards the damage history, forcing the next frame to repaint
// fully regardless of age.
func (t *OutputDamageTracker) Reset() {
	t.history = nil
}

// RenderOutput diffs elements against the frame `age` frames ago and, when
// anything changed, asks the renderer to paint exactly those regions.
// age 0 forces a full repaint; so does an age older than the history.
func (t *OutputDamageTracker) RenderOutput(r Renderer, age int, elements []shell.Element, clear shell.Color) (RenderOutputResult, error) {
	outGeo := t.out.Geometry()
	full := geometry.Rect{Width: outGeo.Width, Height: outGeo.Height}

	current := make(frameSnapshot, len(elements))
	states := make(ElementStates, len(elements))
	for i, el := range elements {
		key := ElementKey{Source: el.Source, Kind: el.Kind}
		local := el.Geometry
		local.X -= outGeo.X
		local.Y -= outGeo.Y
		current[key] = elementSnapshot{geom: local, commit: el.Commit, alpha: el.Alpha}
		states[key] = ElementState{
			Kind:      el.Kind,
			Geometry:  local,
			ZIndex:    i,
			Presented: el.Alpha > 0 && local.Overlaps(full),
		}
	}

	var damage []geometry.Rect
	if age <= 0 || age > len(t.history) {
		damage = []geometry.Rect{full}
	} else {
		damage = diffSnapshots(t.history[age-1], current)
		for i := range damage {
			damage[i] = damage[i].Intersection(full)
		}
		damage = geometry.Coalesce(damage)
	}

	if len(damage) == 0 {
		// Nothing to repaint. The frame still counts for history so a
		// later age-N diff sees it.
		t.push(current)
		return RenderOutputResult{Damage: nil, States: states}, nil
	}

	if err := r.Render(elements, damage, clear); err != nil {
		if errors.Is(err, ErrContextLost) {
			return RenderOutputResult{}, err
		}
		return RenderOutputResult{}, fmt.Errorf("render output %s: %w", t.out.Name(), err)
	}

	t.push(current)
	return RenderOutputResult{Damage: damage, States: states}, nil
}

func (t *OutputDamageTracker) push(snap frameSnapshot) {
	t.history = append([]frameSnapshot{snap}, t.history...)
	if len(t.history) > maxDamageHistory {
		t.history = t.history[:maxDamageHistory]
	}
}

func diffSnapshots(old, current frameSnapshot) []geometry.Rect {
	var damage []geometry.Rect

	for key, cur := range current {
		prev, ok := old[key]
		if !ok {
			damage = append(damage, cur.geom)
			continue
		}
		if prev.geom != cur.geom {
			damage = append(damage, prev.geom, cur.geom)
			continue
		}
		if prev.commit != cur.commit || prev.alpha != cur.alpha {
			damage = append(damage, cur.geom)
		}
	}

	for key, prev := range old {
		if _, ok := current[key]; !ok {
			damage = append(damage, prev.geom)
		}
	}

	return damage
}
