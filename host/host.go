package host

import "github.com/napalu/navlocale"

// DetectLocale returns the preferred locale of the current host, or "" when
// the host exposes none.
func DetectLocale(opts ...navlocale.Option) string {
	return navlocale.New(Default(), opts...).DetectLocale()
}
