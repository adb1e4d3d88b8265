package log

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is a logrus entry tagged with the name of the module that owns it.
type Logger struct {
	*logrus.Entry
}

// NewLogger returns a Logger writing to out. format is "text" or "json";
// verbose lowers the level from warn to debug.
func NewLogger(module string, out io.Writer, format string, verbose bool) (*Logger, error) {
	base := logrus.New()
	switch format {
	case "", "text":
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
		})
	case "json":
		base.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	base.SetOutput(out)
	base.SetLevel(logrus.WarnLevel)
	if verbose {
		base.SetLevel(logrus.DebugLevel)
	}
	return &Logger{base.WithField("name", module)}, nil
}
