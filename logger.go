package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// setupLogger points logrus at stderr, or at a rotating file when logFile is set.
// Report output always stays on stdout.
func setupLogger(verbose bool, logFile string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	level := logrus.InfoLevel
	if verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)

	if logFile == "" {
		logrus.SetOutput(os.Stderr)
		return
	}
	// 日志轮转
	logrus.SetOutput(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 10,
		MaxAge:     7, // days
		LocalTime:  true,
	})
}
