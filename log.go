package lighthouses

import (
	"io"
	"log"
	"sync"
)

var (
	logMu  sync.RWMutex
	logger = log.New(io.Discard, "", 0)
)

// SetLogger sends search and sweep diagnostics to l. Passing nil silences
// them again.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logMu.Lock()
	logger = l
	logMu.Unlock()
}

func logf(format string, a ...interface{}) {
	logMu.RLock()
	l := logger
	logMu.RUnlock()
	l.Printf(format, a...)
}
