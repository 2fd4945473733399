//go:build windows

package host

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	// Windows locale name max length
	localeNameMaxLength = 85
)

var (
	kernel32                     = windows.NewLazySystemDLL("kernel32.dll")
	procGetUserDefaultLocaleName = kernel32.NewProc("GetUserDefaultLocaleName")
)

// platformUserLanguage returns the user's default locale name as reported by
// GetUserDefaultLocaleName (Vista+), or "" when the call is unavailable or fails.
func platformUserLanguage() string {
	if procGetUserDefaultLocaleName.Find() != nil {
		return ""
	}

	buf := make([]uint16, localeNameMaxLength)
	ret, _, _ := procGetUserDefaultLocaleName.Call(
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if ret == 0 {
		return ""
	}

	return windows.UTF16ToString(buf)
}
