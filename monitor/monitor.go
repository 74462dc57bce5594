// Package monitor enumerates connected displays.
//
// Every call to All re-queries the platform, so indices into the returned
// slice are only meaningful against that snapshot: plugging or unplugging
// a display can reorder or resize the list between two calls.
package monitor

import "image"

// Monitor describes one connected display at enumeration time.
type Monitor struct {
	// ID is the platform-assigned numeric id. It is not guaranteed
	// stable across reboots or display reconfiguration; 0 is never a
	// valid id.
	ID uint32
	// Name is the platform device or output name (e.g. "\\.\DISPLAY1"
	// on Windows, "DP-2" under X11).
	Name string
	// Bounds is the display rectangle in virtual-desktop coordinates.
	Bounds image.Rectangle
}

// Width returns the horizontal resolution in pixels.
func (m Monitor) Width() int { return m.Bounds.Dx() }

// Height returns the vertical resolution in pixels.
func (m Monitor) Height() int { return m.Bounds.Dy() }

// All returns a fresh snapshot of the connected displays.
func All() ([]Monitor, error) {
	return platformMonitors()
}
