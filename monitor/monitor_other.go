//go:build !windows && !linux

package monitor

func platformMonitors() ([]Monitor, error) {
	return fallbackMonitors()
}
