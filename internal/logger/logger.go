// Package logger owns the global structured logger. Log output goes to a
// rotating file under the config directory; stderr stays silent unless
// debug mode is on, so the TUI never fights log lines for the terminal.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the global logger instance. Nil until Init runs; the package
// helpers tolerate that.
var Logger *log.Logger

// Config holds logger configuration.
type Config struct {
	Debug     bool
	ConfigDir string
}

// Init initializes the global logger with the given configuration.
func Init(cfg Config) error {
	logDir := filepath.Join(cfg.ConfigDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "datepick.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
	}

	var writer io.Writer = fileWriter
	if cfg.Debug {
		writer = io.MultiWriter(os.Stderr, fileWriter)
	}

	Logger = log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "datepick",
	})

	return nil
}

// SessionLogger annotates every record with the picker session it belongs
// to, so interleaved sessions stay distinguishable in one log file.
type SessionLogger struct {
	id string
}

// WithSession scopes the global logger to one session ID.
func WithSession(id string) SessionLogger {
	return SessionLogger{id: id}
}

func (l SessionLogger) Debug(msg string, keyvals ...interface{}) {
	Debug(msg, l.kv(keyvals)...)
}

func (l SessionLogger) Info(msg string, keyvals ...interface{}) {
	Info(msg, l.kv(keyvals)...)
}

func (l SessionLogger) Error(msg string, keyvals ...interface{}) {
	Error(msg, l.kv(keyvals)...)
}

func (l SessionLogger) kv(keyvals []interface{}) []interface{} {
	return append([]interface{}{"session", l.id}, keyvals...)
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
