// Package capture grabs raw pixels from a display.
package capture

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/kbinani/screenshot"

	"screen-capture-ffi/monitor"
)

// Display captures the full bounds of m.
func Display(m monitor.Monitor) (*image.RGBA, error) {
	return Rect(m.Bounds)
}

// Rect captures a region of the virtual desktop.
func Rect(bounds image.Rectangle) (*image.RGBA, error) {
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("invalid region dimensions: width=%d, height=%d", bounds.Dx(), bounds.Dy())
	}
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("failed to capture region: %v", err)
	}
	return img, nil
}

// FlattenInto copies img's pixels into dst as tightly packed RGBA rows,
// dropping any per-row padding the stride carries. dst must hold exactly
// width*height*4 bytes.
func FlattenInto(dst []byte, img *image.RGBA) error {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if len(dst) != w*h*4 {
		return fmt.Errorf("destination size %d does not match %dx%d RGBA image (%d bytes)", len(dst), w, h, w*h*4)
	}
	rowLen := w * 4
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		copy(dst[y*rowLen:(y+1)*rowLen], src)
	}
	return nil
}

// Flatten returns img's pixels as a new tightly packed RGBA buffer of
// width*height*4 bytes.
func Flatten(img *image.RGBA) []byte {
	out := make([]byte, img.Rect.Dx()*img.Rect.Dy()*4)
	_ = FlattenInto(out, img)
	return out
}

// EncodePNG renders img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image as PNG: %v", err)
	}
	return buf.Bytes(), nil
}
