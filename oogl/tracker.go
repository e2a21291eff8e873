// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"fmt"
)

// bindingTarget records the object bound to one binding point and
// whether a scoped binding of it is alive.
type bindingTarget struct {
	bind  func(name uint)
	bound uint
	alive bool
}

func (t *bindingTarget) bindIfNeeded(name uint) {
	if t.bound != name {
		t.bind(name)
		t.bound = name
	}
}

func (t *bindingTarget) onBindingCreated(name uint) {
	if t.alive {
		panic(fmt.Errorf("attempt to bind object #%d while binding of object #%d is still alive", name, t.bound))
	}
	t.alive = true
}

func (t *bindingTarget) onBindingDropped() {
	t.alive = false
}

func (t *bindingTarget) unbindUnconditionally() {
	t.bind(0)
	t.bound = 0
}

// forget clears the bound object if it is name. GL unbinds deleted
// objects implicitly.
func (t *bindingTarget) forget(name uint) {
	if t.alive && t.bound == name {
		panic(fmt.Errorf("attempt to release object #%d while its binding is still alive", name))
	}
	if t.bound == name {
		t.bound = 0
	}
}

// checkAlive panics if an object of the given kind was released.
func checkAlive(kind string, valid bool) {
	if !valid {
		panic(fmt.Errorf("use of released %s", kind))
	}
}

// scope is the part shared by all scoped bindings.
type scope struct {
	target *bindingTarget
	name   uint
	done   bool
}

func (s *scope) open(t *bindingTarget, name uint) {
	t.onBindingCreated(name)
	t.bindIfNeeded(name)
	s.target = t
	s.name = name
}

// Release ends the binding. The object stays bound; binding it again
// issues no GL call. Release is idempotent.
func (s *scope) Release() {
	if s.done {
		return
	}
	s.done = true
	s.target.onBindingDropped()
}

// UnbindCompletely binds object 0 and ends the binding.
func (s *scope) UnbindCompletely() {
	s.check()
	s.target.unbindUnconditionally()
	s.Release()
}

func (s *scope) check() {
	if s.done {
		panic(fmt.Errorf("use of binding of object #%d after Release", s.name))
	}
}
