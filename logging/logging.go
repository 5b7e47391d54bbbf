// Package logging builds the logrus logger shared by the pathviz packages.
//
// Library packages never configure logging themselves: they accept a
// logrus.FieldLogger option and fall back to logrus.StandardLogger(). The
// driver calls New once with the configured level and format and hands the
// result to every component.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat indicates a format other than FormatText or FormatJSON.
var ErrUnknownFormat = errors.New("logging: unknown log format")

// New returns a logger writing to stderr at the given level ("trace" through
// "panic", as understood by logrus.ParseLevel) in the given format.
func New(level, format string) (*logrus.Logger, error) {
	return NewWithOutput(os.Stderr, level, format)
}

// NewWithOutput is New with an explicit destination.
func NewWithOutput(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05.000",
		})
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return l, nil
}
