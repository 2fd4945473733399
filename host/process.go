// Package host provides navlocale environments for the program's own host:
// the process locale variables on native platforms and the browser's
// navigator object under js/wasm.
package host

import (
	"strings"

	"github.com/napalu/navlocale"
	"github.com/napalu/navlocale/env"
)

// Process reads locale signals from the process environment.
//
//   - Languages: the GNU LANGUAGE variable, a colon-separated priority list
//   - Language: the first non-empty of LC_ALL, LC_MESSAGES and LANG
//   - UserLanguage: the platform's user default locale, where one exists
//
// Values are passed through exactly as the environment holds them.
type Process struct {
	resolver     env.Resolver
	userLanguage func() string
}

// NewProcess creates a Process over r. A nil r reads the OS environment.
func NewProcess(r env.Resolver) *Process {
	if r == nil {
		r = env.OSResolver{}
	}
	return &Process{resolver: r, userLanguage: platformUserLanguage}
}

func (p *Process) Languages() []string {
	value := p.resolver.Get("LANGUAGE")
	if value == "" {
		return nil
	}

	var langs []string
	for _, lang := range strings.Split(value, ":") {
		if lang != "" {
			langs = append(langs, lang)
		}
	}

	return langs
}

func (p *Process) Language() string {
	// Check locale environment variables in order of precedence
	for _, envVar := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if lang := p.resolver.Get(envVar); lang != "" {
			return lang
		}
	}

	return ""
}

func (p *Process) UserLanguage() string {
	if p.userLanguage == nil {
		return ""
	}
	return p.userLanguage()
}

var _ navlocale.Environment = (*Process)(nil)
