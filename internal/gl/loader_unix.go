// SPDX-License-Identifier: Unlicense OR MIT

//go:build (linux || freebsd || openbsd) && cgo

package gl

import (
	"sync"
	"unsafe"
)

/*
#cgo linux freebsd LDFLAGS: -ldl

#include <stdlib.h>
#include <dlfcn.h>

static void *oogl_openGLESv2(void) {
	void *lib = dlopen("libGLESv2.so.2", RTLD_NOW | RTLD_GLOBAL);
	if (lib == NULL) {
		lib = dlopen("libGLESv2.so", RTLD_NOW | RTLD_GLOBAL);
	}
	return lib;
}
*/
import "C"

var (
	libGLESv2     unsafe.Pointer
	libGLESv2Once sync.Once
)

// LibGLESv2 resolves entry points from the system libGLESv2 shared
// library. It is a Loader for contexts made current by EGL.
func LibGLESv2(name string) unsafe.Pointer {
	libGLESv2Once.Do(func() {
		libGLESv2 = C.oogl_openGLESv2()
	})
	if libGLESv2 == nil {
		return nil
	}
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return C.dlsym(libGLESv2, cname)
}
