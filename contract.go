//go:build !koixdebug

package ui

// debugAsserts reports whether contract violations panic.
const debugAsserts = false

// contract logs a contract violation. Release builds carry on; build with
// -tags koixdebug to turn violations into panics.
func contract(cond bool, msg string, args ...any) {
	if cond {
		return
	}
	if uiVerbose() {
		defaultLogger.Debug("contract violation: "+msg, args...)
	}
}
