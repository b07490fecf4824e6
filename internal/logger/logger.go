package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the process-wide logger
var Logger *logrus.Logger

func init() {
	Logger = logrus.New()
	Logger.Formatter = &logrus.TextFormatter{
		DisableLevelTruncation: true,
		PadLevelText:           true,
		TimestampFormat:        "2006/01/02 15:04:05",
		FullTimestamp:          true,
	}
}

// SetLevel parses a level name such as "debug"; unknown names keep the current level.
func SetLevel(name string) {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		Logger.Warnf("unknown log level %q, keeping %s", name, Logger.GetLevel())
		return
	}
	Logger.SetLevel(lvl)
}

// SetOutput redirects log output, mostly for tests
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// Fields is an alias so callers don't import logrus directly
type Fields = logrus.Fields

func WithFields(f Fields) *logrus.Entry {
	return Logger.WithFields(f)
}

func WithField(key string, value any) *logrus.Entry {
	return Logger.WithField(key, value)
}

func Debugf(format string, args ...any) {
	Logger.Debugf(format, args...)
}

func Infof(format string, args ...any) {
	Logger.Infof(format, args...)
}

func Info(args ...any) {
	Logger.Infoln(args...)
}

func Warnf(format string, args ...any) {
	Logger.Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	Logger.Errorf(format, args...)
}

func Fatalf(format string, args ...any) {
	Logger.Fatalf(format, args...)
}
