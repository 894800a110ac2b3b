// SPDX-License-Identifier: MIT

package pip

// debugChecks enables the internal invariant checks (tests switch it on).
var debugChecks = false

// debugAssert panics with msg when debugChecks is on and cond is false.
func debugAssert(cond bool, msg string) {
	if debugChecks && !cond {
		panic(msg)
	}
}
