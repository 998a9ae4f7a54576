// Package cyplog is the small structured logger shared by the CLI and
// library entry points: leveled and field-based, wrapping a
// component-scoped logrus entry. Fields over format strings, one
// logger per concern rather than a package-global; verbosity is gated
// by the OCYPHER_DEBUG environment variable.
package cyplog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps a *logrus.Entry scoped to one component name.
type Logger struct {
	entry *logrus.Entry
}

var base = newBase()

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if os.Getenv("OCYPHER_DEBUG") != "" {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.WarnLevel)
	}
	return l
}

// New returns a Logger scoped to the named component, e.g. "parser" or
// "cmd".
func New(component string) *Logger {
	return &Logger{entry: base.WithField("component", component)}
}

func (l *Logger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }

// WithField returns a derived Logger carrying one extra structured
// field, e.g. WithField("ordinal", n.Ordinal()).
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}
