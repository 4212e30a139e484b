// Package logging builds the diagnostic logger. Diagnostics never go to
// stdout, which carries only the rendered summary.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to out. An unparsable level falls back to
// warn; format is "json" or anything else for text.
func New(level, format string, out io.Writer) *logrus.Logger {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			DisableColors:    true,
			DisableTimestamp: true,
		})
	}

	if err != nil {
		log.WithField("value", level).Warn("unknown log level, using warn")
	}
	return log
}
