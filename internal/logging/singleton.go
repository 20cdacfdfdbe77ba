package logging

import (
	"sync"
)

var (
	instance *Logger
	once     sync.Once
	mu       sync.Mutex
)

// InitLogger initializes the global logger with the given configuration.
// Safe to call more than once; only the first call takes effect.
func InitLogger(config *LogConfig) error {
	var initErr error
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()

		logger, err := NewLogger(config)
		if err != nil {
			initErr = err
			return
		}
		instance = logger
	})
	return initErr
}

// GetGlobalLogger returns the singleton logger instance.
// It panics if InitLogger has not been called.
func GetGlobalLogger() *Logger {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		panic("logger not initialized - call logging.InitLogger() first")
	}
	return instance
}
