// Package logging configures the shared logrus logger. Normal runs emit
// JSON lines; DEBUG switches to human-readable text output.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

func InitLogger(debug bool) {
	Log = logrus.New()
	Log.Out = os.Stdout

	if debug {
		Log.SetLevel(logrus.DebugLevel)
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	} else {
		Log.SetLevel(logrus.InfoLevel)
		Log.SetFormatter(&logrus.JSONFormatter{})
	}
}

// WithComponent tags log entries with the subsystem they come from.
func WithComponent(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
