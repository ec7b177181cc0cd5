//go:build koixdebug

package ui

import "fmt"

const debugAsserts = true

func contract(cond bool, msg string, args ...any) {
	if cond {
		return
	}
	defaultLogger.Error("contract violation: "+msg, args...)
	panic(fmt.Sprintf("ui: contract violation: %s %v", msg, args))
}
