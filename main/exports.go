// Exported C surface of the capture library. Build with
//
//	go build -buildmode=c-shared -o libscreencapture.so ./main
//
// Every entry point re-enumerates the displays, so an index is only valid
// against the snapshot taken by that same call. Failures never cross the
// boundary: each entry point returns its type's sentinel (0, NULL, or the
// all-zero CapturedImage) and records a message in the calling thread's
// error slot.
package main

/*
#include <stdlib.h>
#include "bridge.h"
*/
import "C"

import (
	"fmt"
	"log"
	"strings"
	"unsafe"

	"screen-capture-ffi/capture"
	"screen-capture-ffi/monitor"
)

func setLastError(msg string) {
	cmsg := C.CString(msg)
	C.bridge_set_last_error(cmsg)
	C.free(unsafe.Pointer(cmsg))
}

// lastErrorString mirrors capture_last_error_message for in-process
// callers.
func lastErrorString() string {
	return goString(C.bridge_last_error())
}

func goString(s *C.char) string {
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

func cIndex(i int) C.size_t { return C.size_t(i) }

// monitorAt re-enumerates and returns the monitor at index, recording
// the error message and reporting false when enumeration fails or the
// index is out of range.
func monitorAt(index C.size_t) (monitor.Monitor, bool) {
	monitors, err := monitor.All()
	if err != nil {
		msg := fmt.Sprintf("Error fetching monitors: %v", err)
		log.Print(msg)
		setLastError(msg)
		return monitor.Monitor{}, false
	}
	if uint64(index) >= uint64(len(monitors)) {
		setLastError(fmt.Sprintf("Monitor index out of bounds: %d", uint64(index)))
		return monitor.Monitor{}, false
	}
	return monitors[index], true
}

// capture_monitor_count returns the number of connected monitors, or 0 if
// enumeration fails.
//
//export capture_monitor_count
func capture_monitor_count() C.size_t {
	monitors, err := monitor.All()
	if err != nil {
		msg := fmt.Sprintf("Error fetching monitors: %v", err)
		log.Print(msg)
		setLastError(msg)
		return 0
	}
	return C.size_t(len(monitors))
}

// capture_monitor_name returns the name of the monitor at index as a
// newly allocated NUL-terminated string. The caller must release it with
// capture_free_string. Returns NULL on failure.
//
//export capture_monitor_name
func capture_monitor_name(index C.size_t) *C.char {
	m, ok := monitorAt(index)
	if !ok {
		return nil
	}
	if strings.ContainsRune(m.Name, 0) {
		setLastError("Monitor name contains null bytes")
		return nil
	}
	return C.CString(m.Name)
}

// capture_monitor_id returns the platform-assigned id of the monitor at
// index, or 0 on failure. Ids are not guaranteed stable across reboots.
//
//export capture_monitor_id
func capture_monitor_id(index C.size_t) C.uint {
	m, ok := monitorAt(index)
	if !ok {
		return 0
	}
	return C.uint(m.ID)
}

// capture_monitor_width returns the width in pixels of the monitor at
// index, or 0 on failure.
//
//export capture_monitor_width
func capture_monitor_width(index C.size_t) C.uint {
	m, ok := monitorAt(index)
	if !ok {
		return 0
	}
	return C.uint(m.Width())
}

// capture_monitor_height returns the height in pixels of the monitor at
// index, or 0 on failure.
//
//export capture_monitor_height
func capture_monitor_height(index C.size_t) C.uint {
	m, ok := monitorAt(index)
	if !ok {
		return 0
	}
	return C.uint(m.Height())
}

// capture_monitor_image captures the monitor at index. The pixel buffer
// is owned by the caller, who must release it with capture_free_image.
// On failure the returned struct is all zero.
//
//export capture_monitor_image
func capture_monitor_image(index C.size_t) C.CapturedImage {
	var empty C.CapturedImage

	monitors, err := monitor.All()
	if err != nil {
		msg := fmt.Sprintf("Error fetching monitors: %v", err)
		log.Print(msg)
		setLastError(msg)
		return empty
	}
	if uint64(index) >= uint64(len(monitors)) {
		msg := fmt.Sprintf("Invalid monitor index: %d", uint64(index))
		log.Print(msg)
		setLastError(msg)
		return empty
	}

	img, err := capture.Display(monitors[index])
	if err != nil {
		msg := fmt.Sprintf("Error capturing image for monitor %d: %v", uint64(index), err)
		log.Print(msg)
		setLastError(msg)
		return empty
	}

	width, height := img.Rect.Dx(), img.Rect.Dy()
	size := width * height * 4
	buf := C.malloc(C.size_t(size))
	if buf == nil {
		msg := fmt.Sprintf("Error capturing image for monitor %d: out of memory (%d bytes)", uint64(index), size)
		log.Print(msg)
		setLastError(msg)
		return empty
	}
	if err := capture.FlattenInto(unsafe.Slice((*byte)(buf), size), img); err != nil {
		C.free(buf)
		msg := fmt.Sprintf("Error capturing image for monitor %d: %v", uint64(index), err)
		log.Print(msg)
		setLastError(msg)
		return empty
	}

	return C.CapturedImage{
		data:   (*C.uint8_t)(buf),
		len:    C.size_t(size),
		width:  C.uint32_t(width),
		height: C.uint32_t(height),
	}
}

// capture_free_string releases a string returned by capture_monitor_name.
// NULL is a no-op. Releasing the same pointer twice is undefined.
//
//export capture_free_string
func capture_free_string(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

// capture_free_image releases the pixel buffer of an image returned by
// capture_monitor_image. A NULL data pointer is a no-op, so releasing the
// failure sentinel is safe.
//
//export capture_free_image
func capture_free_image(img C.CapturedImage) {
	if img.data != nil {
		C.free(unsafe.Pointer(img.data))
	}
}

// capture_last_error_message returns the calling thread's pending error
// message, or NULL if none. The pointer is borrowed: it is valid only
// until the next failing call on the same thread and must not be freed.
//
//export capture_last_error_message
func capture_last_error_message() *C.char {
	return C.bridge_last_error()
}
