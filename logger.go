package main

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// logger is the process logger. It writes to stderr; stdout carries only the
// generated code.
var logger = logrus.NewEntry(newLogger(os.Stderr))

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.WarnLevel)
	setLogFormat(l, "text")
	return l
}

func setLogFormat(l *logrus.Logger, format string) {
	switch format {
	case "json":
		l.Formatter = &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "logLevel",
				logrus.FieldKeyMsg:   "message",
			},
			TimestampFormat: time.RFC3339Nano,
		}
	default:
		l.Formatter = &logrus.TextFormatter{
			TimestampFormat: time.RFC3339Nano,
			FullTimestamp:   true,
		}
	}
}

// configureLogger applies the level and format from cfg to l.
func configureLogger(l *logrus.Logger, cfg Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	l.SetLevel(level)
	setLogFormat(l, cfg.LogFormat)
	return nil
}
