// SPDX-License-Identifier: Unlicense OR MIT

// Package byteslice provides byte views of typed slices for uploads.
package byteslice

import (
	"unsafe"
)

// Slice returns a byte view of s. The view aliases s.
func Slice[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}
