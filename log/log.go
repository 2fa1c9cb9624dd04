package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetLogging sets log using in this application
func SetLogging() {
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetOutput(os.Stdout)
}

// SetQuiet drops everything below warnings, used by scheduled runs
// that only want a machine-readable export on stdout.
func SetQuiet() {
	logrus.SetLevel(logrus.WarnLevel)
	logrus.SetOutput(os.Stdout)
}
