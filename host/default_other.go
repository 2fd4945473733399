//go:build !(js && wasm)

package host

import "github.com/napalu/navlocale"

// Default returns the process environment of the running program.
func Default() navlocale.Environment {
	return NewProcess(nil)
}
