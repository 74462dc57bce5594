package monitor

import (
	"fmt"

	"github.com/kbinani/screenshot"
)

// fallbackMonitors enumerates through the capture library's display
// bounds. The APIs behind this path expose no device names or ids, so
// both are synthesized: "Display N" and index+1 (keeping 0 free as the
// failure sentinel).
func fallbackMonitors() ([]Monitor, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, fmt.Errorf("no active displays found")
	}
	monitors := make([]Monitor, 0, n)
	for i := 0; i < n; i++ {
		monitors = append(monitors, Monitor{
			ID:     uint32(i + 1),
			Name:   fmt.Sprintf("Display %d", i),
			Bounds: screenshot.GetDisplayBounds(i),
		})
	}
	return monitors, nil
}
