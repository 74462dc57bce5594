// capturectl is a development tool for poking at the capture stack
// without going through the C boundary: list connected monitors or save
// a snapshot of one as PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"screen-capture-ffi/capture"
	"screen-capture-ffi/config"
	"screen-capture-ffi/logutil"
	"screen-capture-ffi/monitor"
)

func main() {
	list := flag.Bool("list", false, "List connected monitors and exit")
	index := flag.Int("capture", -1, "Capture the monitor at this index")
	out := flag.String("out", "capture.png", "Output PNG path for -capture")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logutil.Setup(cfg.EnableFileLogging, cfg.LogFile)

	switch {
	case *list:
		if err := runList(); err != nil {
			log.Fatalf("Failed to list monitors: %v", err)
		}
	case *index >= 0:
		if err := runCapture(*index, *out); err != nil {
			log.Fatalf("Failed to capture: %v", err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runList() error {
	monitors, err := monitor.All()
	if err != nil {
		return fmt.Errorf("fetching monitors: %w", err)
	}
	for i, m := range monitors {
		fmt.Printf("%d: %s (id=%d) %dx%d at %d,%d\n",
			i, m.Name, m.ID, m.Width(), m.Height(), m.Bounds.Min.X, m.Bounds.Min.Y)
	}
	return nil
}

func runCapture(index int, out string) error {
	monitors, err := monitor.All()
	if err != nil {
		return fmt.Errorf("fetching monitors: %w", err)
	}
	if index >= len(monitors) {
		return fmt.Errorf("invalid monitor index: %d (have %d)", index, len(monitors))
	}
	img, err := capture.Display(monitors[index])
	if err != nil {
		return fmt.Errorf("capturing monitor %d: %w", index, err)
	}
	data, err := capture.EncodePNG(img)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Printf("Saved %dx%d capture of %q to %s\n",
		img.Rect.Dx(), img.Rect.Dy(), monitors[index].Name, out)
	return nil
}
