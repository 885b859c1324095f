package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const DefaultLevel = logrus.InfoLevel

var (
	levelMu sync.RWMutex
	level   = DefaultLevel
)

// SetLevel changes the level of every logger created afterwards.
func SetLevel(levelStr string) error {
	if levelStr == "" {
		return nil
	}

	parsed, err := logrus.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return fmt.Errorf("parsing log level: %s", err)
	}

	levelMu.Lock()
	defer levelMu.Unlock()
	level = parsed
	return nil
}

func Level() logrus.Level {
	levelMu.RLock()
	defer levelMu.RUnlock()
	return level
}

// New returns a logger writing to logDest with every entry tagged by component.
func New(logDest io.Writer, component string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(logDest)
	logger.SetLevel(Level())
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    true,
		QuoteEmptyFields: true,
	})
	return logger.WithField("component", component)
}
