//go:build !windows

package host

// platformUserLanguage has no legacy source outside Windows.
func platformUserLanguage() string {
	return ""
}
