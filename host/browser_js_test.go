//go:build js && wasm

package host

import (
	"syscall/js"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/napalu/navlocale"
)

func TestBrowserSignals(t *testing.T) {
	tests := []struct {
		name      string
		navigator map[string]interface{}
		languages []string
		expected  string
	}{
		{
			name: "languages first entry",
			navigator: map[string]interface{}{
				"languages": []interface{}{"fr-CA", "en"},
				"language":  "de-DE",
			},
			languages: []string{"fr-CA", "en"},
			expected:  "fr-CA",
		},
		{
			name: "empty languages falls back to language",
			navigator: map[string]interface{}{
				"languages": []interface{}{},
				"language":  "de-DE",
			},
			languages: []string{},
			expected:  "de-DE",
		},
		{
			name:      "userLanguage last",
			navigator: map[string]interface{}{"userLanguage": "es"},
			expected:  "es",
		},
		{
			name: "languages that is not array-like is ignored",
			navigator: map[string]interface{}{
				"languages": "fr-CA",
				"language":  "de-DE",
			},
			expected: "de-DE",
		},
		{
			name: "object without length is ignored",
			navigator: map[string]interface{}{
				"languages": map[string]interface{}{"0": "fr-CA"},
				"language":  "de-DE",
			},
			expected: "de-DE",
		},
		{
			name: "non-string fields read as empty",
			navigator: map[string]interface{}{
				"language":     42,
				"userLanguage": true,
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBrowser(js.ValueOf(tt.navigator))

			assert.Equal(t, tt.languages, b.Languages())
			assert.Equal(t, tt.expected, navlocale.DetectLocale(b))
		})
	}
}

func TestBrowserWithoutNavigator(t *testing.T) {
	for _, nav := range []js.Value{js.Undefined(), js.Null(), js.ValueOf("navigator")} {
		b := newBrowser(nav)
		assert.Nil(t, b.Languages())
		assert.Equal(t, "", b.Language())
		assert.Equal(t, "", b.UserLanguage())
		assert.Equal(t, "", navlocale.DetectLocale(b))
	}
}
