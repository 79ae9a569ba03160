// SPDX-License-Identifier: MIT

package interval

import "log"

// Warnf is the package-level diagnostic hook for best-effort fallbacks. It
// defaults to log.Printf but may be replaced by SetWarnf. Tests or
// production code can redirect or mute it.
var Warnf func(format string, v ...interface{}) = log.Printf

// SetWarnf replaces the package warning hook. Passing nil sets a no-op.
func SetWarnf(f func(format string, v ...interface{})) {
	if f == nil {
		Warnf = func(string, ...interface{}) {}
		return
	}
	Warnf = f
}
