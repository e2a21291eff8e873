// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"fmt"
	"reflect"
)

// reflector is implemented by pointers to Uniform and Attrib handles.
type reflector interface {
	reflectFrom(p *Program, name string)
}

var reflectorType = reflect.TypeOf((*reflector)(nil)).Elem()

func (u *Uniform[T]) reflectFrom(p *Program, name string) {
	*u = GetUniform[T](p, name)
}

func (a *Attrib[T]) reflectFrom(p *Program, name string) {
	*a = GetAttrib[T](p, name)
}

// Reflect fills every Uniform and Attrib field of the struct block
// points to with a handle fetched from p. A field refers to the shader
// variable named by its glsl tag, or to the variable of the field name.
// Fields tagged glsl:"-" and fields of other types are skipped.
//
//	var block struct {
//		Pos   oogl.Attrib[f32.Point]
//		Color oogl.Uniform[f32color.RGBA] `glsl:"u_color"`
//	}
//	oogl.Reflect(prog, &block)
func Reflect(p *Program, block any) {
	v := reflect.ValueOf(block)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		panic(fmt.Errorf("reflection block must be a pointer to a struct, got %T", block))
	}
	v = v.Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !reflect.PointerTo(field.Type).Implements(reflectorType) {
			continue
		}
		name, ok := field.Tag.Lookup("glsl")
		if name == "-" {
			continue
		}
		if !ok || name == "" {
			name = field.Name
		}
		if !field.IsExported() {
			panic(fmt.Errorf("reflection block field %s of %s is not exported", field.Name, t))
		}
		v.Field(i).Addr().Interface().(reflector).reflectFrom(p, name)
	}
}
