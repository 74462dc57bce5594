package main

import (
	"screen-capture-ffi/config"
	"screen-capture-ffi/logutil"
)

// Logging is configured when the shared library is loaded; the host
// process opts into file logging via .env or environment variables.
func init() {
	if cfg, err := config.Load(); err == nil {
		logutil.Setup(cfg.EnableFileLogging, cfg.LogFile)
	}
}

// Required for -buildmode=c-shared; never called.
func main() {}
