package monitor

import (
	"testing"
)

func TestAll(t *testing.T) {
	monitors, err := All()
	if err != nil {
		t.Logf("Failed to enumerate monitors (expected in headless environment): %v", err)
		return
	}
	if len(monitors) == 0 {
		t.Fatal("All returned no monitors and no error")
	}
	for i, m := range monitors {
		if m.Width() <= 0 || m.Height() <= 0 {
			t.Errorf("monitor %d: expected positive dimensions, got %dx%d", i, m.Width(), m.Height())
		}
		if m.Name == "" {
			t.Errorf("monitor %d: expected non-empty name", i)
		}
		if m.ID == 0 {
			t.Errorf("monitor %d: expected non-zero id", i)
		}
	}
}

func TestAllReturnsFreshSnapshot(t *testing.T) {
	// Two back-to-back calls must return independent slices.
	a, err := All()
	if err != nil {
		t.Skipf("monitor enumeration unavailable: %v", err)
	}
	b, err := All()
	if err != nil {
		t.Fatalf("second enumeration failed after first succeeded: %v", err)
	}
	if len(a) != len(b) {
		t.Logf("monitor count changed between calls: %d vs %d", len(a), len(b))
		return
	}
	a[0].Name = "mutated"
	if b[0].Name == "mutated" {
		t.Error("snapshots share backing storage")
	}
}
