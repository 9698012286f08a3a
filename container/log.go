package container

import (
	"sync"

	"go.uber.org/zap"
)

// container/ keeps its own logger singleton rather than importing
// slbc.Logger(): slbc already imports container (for ULEB128 helpers
// used by the numeral and event codecs), so the reverse import would
// be a cycle. Same pattern as slbc/log.go, grounded on the same
// wippyai-wasm-runtime/linker/logger.go source.
var (
	loggerMu sync.RWMutex
	logger   *zap.Logger
)

// Logger returns the package-level diagnostic logger, defaulting to a
// no-op logger until SetLogger is called.
func Logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// SetLogger installs l as the package-level diagnostic logger. Passing
// nil restores the no-op default. Callers that want one logger across
// both packages should call both slbc.SetLogger and container.SetLogger
// with the same *zap.Logger.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}
