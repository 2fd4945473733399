//go:build js && wasm

package host

import "github.com/napalu/navlocale"

// Default returns the browser's navigator environment.
func Default() navlocale.Environment {
	return NewBrowser()
}
