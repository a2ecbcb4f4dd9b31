package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

// String returns the string representation of the level.
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

// ParseLevel parses a level name; it returns INFO for unrecognized input.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
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

// Format selects the log output encoding.
type Format int

const (
	TextFormat Format = iota
	JSONFormat
)

// ParseFormat parses a format name; it returns TextFormat for unrecognized input.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return JSONFormat
	}
	return TextFormat
}

type entry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Component string                 `json:"component,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// Logger is a leveled, structured logger. Build one with New; the zero value
// is not usable.
type Logger struct {
	mu        sync.Mutex
	level     Level
	format    Format
	out       io.Writer
	component string
}

// New creates a logger writing to out at the given level and format.
func New(level Level, format Format, out io.Writer) *Logger {
	if out == nil {
		out = os.Stdout
	}
	return &Logger{level: level, format: format, out: out}
}

// WithComponent returns a logger that tags every entry with a component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{level: l.level, format: l.format, out: l.out, component: component}
}

// SetLevel sets the minimum level emitted.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) log(level Level, msg string, err error, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}

	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level.String(),
		Message:   msg,
		Component: l.component,
		Fields:    fields,
	}
	if err != nil {
		e.Error = err.Error()
	}

	var line string
	if l.format == JSONFormat {
		b, _ := json.Marshal(e)
		line = string(b) + "\n"
	} else {
		line = formatText(e)
	}
	l.out.Write([]byte(line))
}

func formatText(e entry) string {
	parts := []string{fmt.Sprintf("[%s] %s", e.Timestamp, e.Level)}
	if e.Component != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Component))
	}
	parts = append(parts, e.Message)
	if len(e.Fields) > 0 {
		kv := make([]string, 0, len(e.Fields))
		for k, v := range e.Fields {
			kv = append(kv, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, "fields={"+strings.Join(kv, ", ")+"}")
	}
	if e.Error != "" {
		parts = append(parts, "error="+e.Error)
	}
	return strings.Join(parts, " ") + "\n"
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	l.log(DEBUG, msg, nil, first(fields))
}

// Info logs an informational message.
func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	l.log(INFO, msg, nil, first(fields))
}

// Warn logs a warning.
func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	l.log(WARN, msg, nil, first(fields))
}

// Error logs an error with its cause.
func (l *Logger) Error(msg string, err error, fields ...map[string]interface{}) {
	l.log(ERROR, msg, err, first(fields))
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(DEBUG, fmt.Sprintf(format, args...), nil, nil)
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(INFO, fmt.Sprintf(format, args...), nil, nil)
}

// Warnf logs a formatted warning.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(WARN, fmt.Sprintf(format, args...), nil, nil)
}

func first(fields []map[string]interface{}) map[string]interface{} {
	if len(fields) > 0 {
		return fields[0]
	}
	return nil
}
