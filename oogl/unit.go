// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"fmt"
)

// TextureUnit is an exclusively owned texture unit, taken from the pool
// of its Context.
type TextureUnit struct {
	ctx   *Context
	index int
}

// NewTextureUnit takes a free unit from the pool. It panics when every
// unit is in use.
func (c *Context) NewTextureUnit() *TextureUnit {
	n := len(c.units)
	if n == 0 {
		panic(fmt.Errorf("all %d texture units are in use", c.unitCount))
	}
	idx := c.units[n-1]
	c.units = c.units[:n-1]
	return &TextureUnit{ctx: c, index: idx}
}

// FreeTextureUnits returns the number of units left in the pool.
func (c *Context) FreeTextureUnits() int {
	return len(c.units)
}

// Index returns the unit number, as passed to sampler uniforms.
func (u *TextureUnit) Index() int {
	return u.index
}

// Release returns the unit to the pool. Release is idempotent.
func (u *TextureUnit) Release() {
	if u.ctx == nil {
		return
	}
	u.ctx.units = append(u.ctx.units, u.index)
	u.ctx = nil
}

func (u *TextureUnit) check() {
	if u.ctx == nil {
		panic(fmt.Errorf("use of texture unit %d after Release", u.index))
	}
}
