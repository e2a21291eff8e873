// SPDX-License-Identifier: Unlicense OR MIT

//go:build cgo

package gl

import (
	"runtime/cgo"
	"unsafe"
)

/*
#include "gles2.h"
*/
import "C"

//export ooglDebugMessage
func ooglDebugMessage(source, typ C.GLenum, id C.GLuint, severity C.GLenum, length C.GLsizei, message *C.GLchar, userParam unsafe.Pointer) {
	fn, ok := cgo.Handle(uintptr(userParam)).Value().(func(DebugMessage))
	if !ok {
		return
	}
	var msg string
	if length >= 0 {
		msg = C.GoStringN((*C.char)(unsafe.Pointer(message)), C.int(length))
	} else {
		msg = C.GoString((*C.char)(unsafe.Pointer(message)))
	}
	fn(DebugMessage{
		Source:   Enum(source),
		Type:     Enum(typ),
		ID:       uint(id),
		Severity: Enum(severity),
		Message:  msg,
	})
}
