package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level represents a logging level
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name to a Level, defaulting to INFO
func ParseLevel(name string) Level {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Format represents the log output format
type Format int

const (
	Text Format = iota
	JSON
)

// ParseFormat converts a format name to a Format, defaulting to Text
func ParseFormat(name string) Format {
	if strings.EqualFold(name, "json") {
		return JSON
	}
	return Text
}

// Logger handles structured logging
type Logger struct {
	out    io.Writer
	level  Level
	format Format
	mu     sync.Mutex
}

// LogConfig contains logger configuration
type LogConfig struct {
	Level  Level
	Format Format
}

var (
	defaultLogger = &Logger{
		out:    os.Stdout,
		level:  INFO,
		format: Text,
	}

	debugColor = color.New(color.FgCyan)
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
)

// New creates a logger writing to out
func New(out io.Writer, config LogConfig) *Logger {
	return &Logger{
		out:    out,
		level:  config.Level,
		format: config.Format,
	}
}

// Configure sets up the default logger
func Configure(config LogConfig) {
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()
	defaultLogger.level = config.Level
	defaultLogger.format = config.Format
}

// SetOutput redirects the default logger and returns the previous writer
func SetOutput(out io.Writer) io.Writer {
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()
	prev := defaultLogger.out
	defaultLogger.out = out
	return prev
}

type logEntry struct {
	Timestamp string      `json:"timestamp"`
	Level     string      `json:"level"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
}

func (l *Logger) log(level Level, msg string, data interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	timestamp := time.Now().Format("2006/01/02 15:04:05")

	if l.format == JSON {
		entry := logEntry{
			Timestamp: timestamp,
			Level:     level.String(),
			Message:   msg,
			Data:      data,
		}
		if err := json.NewEncoder(l.out).Encode(entry); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode log entry: %v\n", err)
		}
		return
	}

	var levelColor *color.Color
	switch level {
	case DEBUG:
		levelColor = debugColor
	case WARN:
		levelColor = warnColor
	case ERROR:
		levelColor = errorColor
	default:
		levelColor = infoColor
	}

	levelStr := levelColor.Sprintf("%-5s", level.String())
	fmt.Fprintf(l.out, "%s %s: %s", timestamp, levelStr, msg)
	if data != nil {
		fmt.Fprintf(l.out, " %+v", data)
	}
	fmt.Fprintln(l.out)
}

func (l *Logger) Debug(msg string, data ...interface{}) {
	l.log(DEBUG, msg, firstOrNil(data))
}

func (l *Logger) Info(msg string, data ...interface{}) {
	l.log(INFO, msg, firstOrNil(data))
}

func (l *Logger) Warn(msg string, data ...interface{}) {
	l.log(WARN, msg, firstOrNil(data))
}

func (l *Logger) Error(msg string, err error, data ...interface{}) {
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	l.log(ERROR, msg, firstOrNil(data))
}

// firstOrNil returns the first element of data if present, nil otherwise
func firstOrNil(data []interface{}) interface{} {
	if len(data) > 0 {
		return data[0]
	}
	return nil
}

// Request logs a served HTTP request
func (l *Logger) Request(method, path string, status int, elapsed time.Duration) {
	data := map[string]interface{}{
		"method":      method,
		"path":        path,
		"status":      status,
		"duration_ms": elapsed.Milliseconds(),
	}
	if status >= 500 {
		l.Warn("Request failed", data)
		return
	}
	l.Info("Request served", data)
}

// PriceLookup logs the outcome of a single price catalog query
func (l *Logger) PriceLookup(key, status string, price float64, err error) {
	data := map[string]interface{}{
		"query":  key,
		"status": status,
	}
	switch {
	case err != nil:
		l.Error("Price lookup failed", err, data)
	case status != "found":
		l.Warn("No price found in catalog", data)
	default:
		data["price_usd"] = price
		l.Debug("Price lookup succeeded", data)
	}
}

// Default logger methods
func Debug(msg string, data ...interface{}) {
	defaultLogger.Debug(msg, data...)
}

func Info(msg string, data ...interface{}) {
	defaultLogger.Info(msg, data...)
}

func Warn(msg string, data ...interface{}) {
	defaultLogger.Warn(msg, data...)
}

func Error(msg string, err error, data ...interface{}) {
	defaultLogger.Error(msg, err, data...)
}

func Request(method, path string, status int, elapsed time.Duration) {
	defaultLogger.Request(method, path, status, elapsed)
}

func PriceLookup(key, status string, price float64, err error) {
	defaultLogger.PriceLookup(key, status, price, err)
}
