package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/IshantPundir/aurora/internal/geometry"
	"github.com/IshantPundir/aurora/internal/output"
)

// Outputs enumerates the active RandR CRTCs as compositor outputs.
// fallbackRefresh (millihertz) is used for CRTCs whose mode timings are
// unavailable.
func (c *Connection) Outputs(fallbackRefresh int) ([]*output.Output, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	// Best effort: topology changes surface in Pump as a changed flag.
	_ = randr.SelectInputChecked(c.XUtil.Conn(), c.Root, randr.NotifyMaskScreenChange).Check()

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	modeRefresh := make(map[uint32]int, len(resources.Modes))
	for _, mode := range resources.Modes {
		total := int64(mode.Htotal) * int64(mode.Vtotal)
		if total > 0 {
			modeRefresh[mode.Id] = int(int64(mode.DotClock) * 1000 / total)
		}
	}

	var outputs []*output.Output
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("X11-%d", i)
		if outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(outputInfo.Name)
		}

		refresh, ok := modeRefresh[uint32(crtcInfo.Mode)]
		if !ok || refresh <= 0 {
			refresh = fallbackRefresh
		}

		geom := geometry.Rect{
			X:      int(crtcInfo.X),
			Y:      int(crtcInfo.Y),
			Width:  int(crtcInfo.Width),
			Height: int(crtcInfo.Height),
		}
		outputs = append(outputs, output.New(name, geom, output.Mode{
			Size:    geom.Size(),
			Refresh: refresh,
		}))
	}

	return outputs, nil
}

// PointerLocation returns the pointer's current root coordinates. ok is
// false when the query fails; the primary-output policy then falls back to
// the first registered output.
func (c *Connection) PointerLocation() (geometry.Point, bool) {
	pointer, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return geometry.Point{}, false
	}
	return geometry.Point{X: int(pointer.RootX), Y: int(pointer.RootY)}, true
}
