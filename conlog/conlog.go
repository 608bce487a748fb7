// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog routes renderer diagnostics to a replaceable printf.
package conlog

import (
	"log"
)

var (
	p         = log.Printf
	developer func() bool
)

// SetPrintf replaces the output function. A nil f restores log.Printf.
func SetPrintf(f func(string, ...interface{})) {
	if f == nil {
		f = log.Printf
	}
	p = f
}

// SetDeveloper installs the check used by DPrintf.
func SetDeveloper(f func() bool) {
	developer = f
}

func Printf(format string, v ...interface{}) {
	p(format, v...)
}

// Warnf reports a recoverable problem. Warnings are never suppressed.
func Warnf(format string, v ...interface{}) {
	p("WARNING: "+format, v...)
}

// DPrintf only prints while the developer check reports true.
func DPrintf(format string, v ...interface{}) {
	if developer == nil || !developer() {
		return
	}
	p(format, v...)
}
