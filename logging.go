package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

const (
	logDir      = "logs"
	logFileName = "the-snake.log"
	maxLogSize  = 10 * 1024 * 1024
	logFlags    = log.LstdFlags | log.Lmicroseconds | log.Lshortfile
)

// setupLogging sends the standard logger to logs/the-snake.log when debug is set
// and discards it otherwise. A log grown past maxLogSize is rotated first. The
// caller closes the returned file, which is nil when nothing was opened.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if err := rotateLog(logPath, time.Now()); err != nil {
		// Keep appending to the oversized log rather than losing output
		fmt.Fprintf(os.Stderr, "Log rotation skipped: %v\n", err)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(logFlags)
	return f
}

// rotatedLogName is the name a log rotated at t is moved to.
func rotatedLogName(t time.Time) string {
	return fmt.Sprintf("the-snake-%s.log", t.Format("20060102-150405"))
}

// rotateLog moves logPath aside when it is larger than maxLogSize.
func rotateLog(logPath string, now time.Time) error {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}
	rotated := filepath.Join(filepath.Dir(logPath), rotatedLogName(now))
	if err := os.Rename(logPath, rotated); err != nil {
		return errors.Wrapf(err, "failed to rotate %s", logPath)
	}
	return nil
}
