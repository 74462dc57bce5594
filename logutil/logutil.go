package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
)

const (
	maxSizeBytes = 10 * 1024 * 1024 // 10 MB
	maxArchives  = 3
)

// Setup routes the standard logger. Diagnostics always reach stderr so
// capture failures stay observable even when the host process never reads
// the error slot; when file logging is enabled they are additionally
// appended to a size-rotated log file (10MB, max 3 archives).
func Setup(enableFileLogging bool, logFile string) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if !enableFileLogging {
		log.SetOutput(os.Stderr)
		return
	}
	rotateIfNeeded(logFile)
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stderr, &rotatingWriter{name: logFile, f: f}))
}

type rotatingWriter struct {
	name string
	f    *os.File
}

func (w *rotatingWriter) Write(p []byte) (int, error) {
	// naive rotation check per write
	if st, err := w.f.Stat(); err == nil && st.Size()+int64(len(p)) > maxSizeBytes {
		_ = w.f.Close()
		rotateIfNeeded(w.name)
		nf, err := os.OpenFile(w.name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return 0, err
		}
		w.f = nf
	}
	return w.f.Write(p)
}

func rotateIfNeeded(name string) {
	// If base exceeds max size, rotate: .1, .2, .3 (oldest discarded)
	if st, err := os.Stat(name); err == nil && st.Size() > maxSizeBytes {
		_ = os.Remove(archiveName(name, maxArchives))
		for i := maxArchives - 1; i >= 1; i-- {
			_ = os.Rename(archiveName(name, i), archiveName(name, i+1))
		}
		_ = os.Rename(name, archiveName(name, 1))
	}
}

func archiveName(name string, n int) string { return fmt.Sprintf("%s.%d", name, n) }
