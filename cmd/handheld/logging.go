package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// setupLogging sends the standard logger to path, appending
// The terminal belongs to tcell, so when the file cannot be opened logs are discarded
func setupLogging(path string) *os.File {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}
