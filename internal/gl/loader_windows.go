// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var libGLESv2 = windows.NewLazyDLL("libGLESv2.dll")

// LibGLESv2 resolves entry points from libGLESv2.dll, as shipped by
// ANGLE. It is a Loader for contexts made current by EGL.
func LibGLESv2(name string) unsafe.Pointer {
	proc := libGLESv2.NewProc(name)
	if err := proc.Find(); err != nil {
		return nil
	}
	addr := proc.Addr()
	return *(*unsafe.Pointer)(unsafe.Pointer(&addr))
}
