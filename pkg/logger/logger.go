// Package logger реализует простой файловый логгер с уровнями.
// Пишет одновременно в файл и stdout.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger файловый логгер с фильтрацией по уровню
type Logger struct {
	logger *log.Logger
	level  Level
	file   *os.File
}

// New создает логгер, пишущий в указанный файл и stdout.
// level: "debug" | "info" | "warn" | "error"
func New(filename, level string) (*Logger, error) {
	parsedLevel, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	var writers []io.Writer
	writers = append(writers, os.Stdout)

	var file *os.File
	if filename != "" {
		file, err = os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file %s: %w", filename, err)
		}
		writers = append(writers, file)
	}

	return &Logger{
		logger: log.New(io.MultiWriter(writers...), "", log.LstdFlags|log.Lmicroseconds),
		level:  parsedLevel,
		file:   file,
	}, nil
}

// Close закрывает файл лога
func (l *Logger) Close() {
	if l.file != nil {
		_ = l.file.Close()
	}
}

// Debug логирует сообщение уровня DEBUG
func (l *Logger) Debug(format string, v ...interface{}) {
	l.write(LevelDebug, "DEBUG", format, v...)
}

// Info логирует сообщение уровня INFO
func (l *Logger) Info(format string, v ...interface{}) {
	l.write(LevelInfo, "INFO", format, v...)
}

// Warn логирует сообщение уровня WARN
func (l *Logger) Warn(format string, v ...interface{}) {
	l.write(LevelWarn, "WARN", format, v...)
}

// Error логирует сообщение уровня ERROR
func (l *Logger) Error(format string, v ...interface{}) {
	l.write(LevelError, "ERROR", format, v...)
}

// Fatal логирует сообщение уровня ERROR и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.write(LevelError, "FATAL", format, v...)
	l.Close()
	os.Exit(1)
}

func (l *Logger) write(level Level, tag, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	l.logger.Printf("[%s] %s", tag, fmt.Sprintf(format, v...))
}

func parseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("logger: unknown level %q", level)
	}
}
