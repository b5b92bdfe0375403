package auditlog

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileSink appends audit lines to per-destination files and echoes them to a
// zap logger unless suppressed.
type FileSink struct {
	console *zap.Logger

	mu    sync.Mutex
	files map[string]*destinationLog
}

type destinationLog struct {
	file   *os.File
	logger *zap.Logger
}

// NewFileSink builds a FileSink echoing to console.
func NewFileSink(console *zap.Logger) *FileSink {
	if console == nil {
		console = zap.NewNop()
	}
	return &FileSink{
		console: console.Named("audit"),
		files:   make(map[string]*destinationLog),
	}
}

// Message implements Sink.
func (s *FileSink) Message(destination, message string, suppressConsole bool) {
	if !suppressConsole {
		s.console.Info(message)
	}
	if destination == "" {
		return
	}

	dl, err := s.open(destination)
	if err != nil {
		s.console.Error("audit destination unavailable", zap.String("destination", destination), zap.Error(err))
		return
	}
	dl.logger.Info(message)
}

// Close flushes and closes all open destinations.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for name, dl := range s.files {
		if err := dl.logger.Sync(); err != nil {
			errs = append(errs, fmt.Errorf("sync %s: %w", name, err))
		}
		if err := dl.file.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", name, err))
		}
		delete(s.files, name)
	}
	return errors.Join(errs...)
}

func (s *FileSink) open(destination string) (*destinationLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dl, ok := s.files[destination]; ok {
		return dl, nil
	}

	f, err := os.OpenFile(destination, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit file: %w", err)
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey: "msg",
		LineEnding: zapcore.DefaultLineEnding,
	})
	core := zapcore.NewCore(encoder, zapcore.Lock(f), zapcore.DebugLevel)

	dl := &destinationLog{file: f, logger: zap.New(core)}
	s.files[destination] = dl
	return dl, nil
}
