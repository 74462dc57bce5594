//go:build linux

package monitor

import (
	"fmt"
	"image"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
)

// platformMonitors asks RandR for the connected outputs. When the X
// server is unreachable or lacks the RandR extension the generic
// enumerator takes over, trading real output names for synthesized ones.
func platformMonitors() ([]Monitor, error) {
	monitors, err := randrMonitors()
	if err != nil {
		return fallbackMonitors()
	}
	return monitors, nil
}

func randrMonitors() ([]Monitor, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connecting to X server: %w", err)
	}
	defer conn.Close()

	if err := randr.Init(conn); err != nil {
		return nil, fmt.Errorf("initializing RandR: %w", err)
	}

	root := xproto.Setup(conn).DefaultScreen(conn).Root
	res, err := randr.GetScreenResourcesCurrent(conn, root).Reply()
	if err != nil {
		return nil, fmt.Errorf("querying screen resources: %w", err)
	}

	var monitors []Monitor
	for _, output := range res.Outputs {
		info, err := randr.GetOutputInfo(conn, output, res.ConfigTimestamp).Reply()
		if err != nil {
			return nil, fmt.Errorf("querying output info: %w", err)
		}
		if info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
			continue
		}
		crtc, err := randr.GetCrtcInfo(conn, info.Crtc, res.ConfigTimestamp).Reply()
		if err != nil {
			return nil, fmt.Errorf("querying crtc info: %w", err)
		}
		x, y := int(crtc.X), int(crtc.Y)
		monitors = append(monitors, Monitor{
			ID:     uint32(output),
			Name:   string(info.Name),
			Bounds: image.Rect(x, y, x+int(crtc.Width), y+int(crtc.Height)),
		})
	}
	if len(monitors) == 0 {
		return nil, fmt.Errorf("no connected RandR outputs")
	}
	return monitors, nil
}
