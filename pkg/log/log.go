package log

import (
	"fmt"
	"os"
)

// Logger is the logging surface consumed by the core. Front-ends may
// substitute their own implementation.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct{}

// New returns a Logger that writes to stderr.
func New() Logger {
	return &logger{}
}

func (l *logger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[INFO]\t"+format+"\n", args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR]\t"+format+"\n", args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[DEBUG]\t"+format+"\n", args...)
}
