// Package logger builds the structured logger shared by the bot and the CLI.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
	"go.elastic.co/ecslogrus"
)

// CreateLogger returns a logrus logger writing ECS formatted JSON to stdout.
// The level comes from LOG_LEVEL and falls back to info.
func CreateLogger(serviceName string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&ecslogrus.Formatter{})
	l.AddHook(newHook(serviceName))
	l.SetLevel(levelFromEnv())
	return l
}

// SetLevel parses level and applies it, leaving the logger untouched on a bad value
func SetLevel(l *logrus.Logger, level string) {
	if level == "" {
		return
	}
	if parsed, err := logrus.ParseLevel(level); err == nil {
		l.SetLevel(parsed)
	}
}

func levelFromEnv() logrus.Level {
	if val, ok := os.LookupEnv("LOG_LEVEL"); ok {
		if level, err := logrus.ParseLevel(val); err == nil {
			return level
		}
	}
	return logrus.InfoLevel
}

// ExtraFieldHook stamps every entry with the service name
type ExtraFieldHook struct {
	service string
}

func newHook(service string) *ExtraFieldHook {
	return &ExtraFieldHook{service: service}
}

// Levels implements logrus.Hook
func (h *ExtraFieldHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook
func (h *ExtraFieldHook) Fire(entry *logrus.Entry) error {
	entry.Data["service.name"] = h.service
	return nil
}
