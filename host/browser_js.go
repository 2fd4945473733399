//go:build js && wasm

package host

import (
	"syscall/js"

	"github.com/napalu/navlocale"
)

// Browser reads locale signals from the global navigator object.
type Browser struct {
	navigator js.Value
}

// NewBrowser binds to the current global navigator.
func NewBrowser() *Browser {
	return newBrowser(js.Global().Get("navigator"))
}

func newBrowser(navigator js.Value) *Browser {
	return &Browser{navigator: navigator}
}

func (b *Browser) field(name string) js.Value {
	if b.navigator.Type() != js.TypeObject {
		return js.Undefined()
	}
	return b.navigator.Get(name)
}

// Languages returns navigator.languages.
func (b *Browser) Languages() []string {
	v := b.field("languages")
	if v.Type() != js.TypeObject || v.Get("length").Type() != js.TypeNumber {
		return nil
	}

	n := v.Length()
	langs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		langs = append(langs, stringOf(v.Index(i)))
	}

	return langs
}

// Language returns navigator.language.
func (b *Browser) Language() string {
	return stringOf(b.field("language"))
}

// UserLanguage returns navigator.userLanguage (old Internet Explorer).
func (b *Browser) UserLanguage() string {
	return stringOf(b.field("userLanguage"))
}

func stringOf(v js.Value) string {
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

var _ navlocale.Environment = (*Browser)(nil)
