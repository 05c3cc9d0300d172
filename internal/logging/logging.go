package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging returns the request logger and gives the package-level logrus logger,
// used by background jobs, the same JSON format.
func SetupLogging() *logrus.Logger {
	formatter := &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	}

	logger := logrus.Logger{
		Formatter: formatter,
		Out:       os.Stdout,
		Level:     logrus.InfoLevel,
	}

	logrus.SetFormatter(formatter)
	logrus.SetOutput(os.Stdout)

	return &logger
}
