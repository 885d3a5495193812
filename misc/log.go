//revive:disable:var-naming
// Package misc holds the logger and the run metrics
package misc

import (
	"flag"

	"github.com/go-pkgz/lgr"
)

// L is logger
var L = lgr.New(lgr.Msec, lgr.Debug, lgr.CallerFile, lgr.CallerFunc)

// quiet is true under go test
func quiet() bool {
	return flag.Lookup("test.v") != nil
}

// Fatal counts the error, pushes metrics and exits through lgr
func Fatal(name, desc string, err error) {
	countError(name)
	if quiet() {
		return
	}
	PushMetrics()
	L.Logf("FATAL %s, %v", desc, err)
}

// Error counts and logs an error
func Error(name, desc string, err error) {
	countError(name)
	if !quiet() {
		L.Logf("ERROR %s, %v", desc, err)
	}
}

// Warn logs a warning
func Warn(desc string) {
	if !quiet() {
		L.Logf("WARN %s", desc)
	}
}

// Info logs an info line
func Info(desc string) {
	if !quiet() {
		L.Logf("INFO %s", desc)
	}
}
