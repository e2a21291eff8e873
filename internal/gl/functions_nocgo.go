// SPDX-License-Identifier: Unlicense OR MIT

//go:build !cgo

package gl

import (
	"errors"
)

// Load reports an error: the native function table calls through cgo.
func Load(loader Loader) (Functions, error) {
	return nil, errors.New("gl: the native function table requires cgo")
}
