package pretty

import (
	"fmt"
	"reflect"
	"strings"
)

// Shape is the formatting category of a type. Every type has exactly one.
type Shape uint8

const (
	// ShapeAtomic values are written with fmt's default conversion.
	ShapeAtomic Shape = iota
	// ShapeOpaque values have no textual form; only their type name is
	// written.
	ShapeOpaque
	// ShapeString values are written as raw text, never as a sequence.
	// String types with their own String method are atomic instead.
	ShapeString
	// ShapePair is [Pair].
	ShapePair
	// ShapeTuple is a struct, formatted field by field.
	ShapeTuple
	// ShapeRange is a slice, array, map or iterator function.
	ShapeRange
	// ShapeOptional holds zero or one value: pointers, [Optional] and
	// sql.Null.
	ShapeOptional
	// ShapeUnion is an interface type; it holds one of the types that
	// implement it, or nothing.
	ShapeUnion
	// ShapeUnit is a struct without fields.
	ShapeUnit
)

var shapeNames = [...]string{
	ShapeAtomic:   "atomic",
	ShapeOpaque:   "opaque",
	ShapeString:   "string",
	ShapePair:     "pair",
	ShapeTuple:    "tuple",
	ShapeRange:    "range",
	ShapeOptional: "optional",
	ShapeUnion:    "union",
	ShapeUnit:     "unit",
}

// String returns the shape name.
func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// Nestable reports whether values of this shape warrant indentation when
// they appear as children of another composite.
func (s Shape) Nestable() bool {
	return s == ShapeRange || s == ShapeTuple
}

// ShapeOf returns the shape of the static type T.
func ShapeOf[T any]() Shape {
	return Classify(reflect.TypeFor[T]())
}

// Classify returns the shape of t. A nil type is an empty union.
func Classify(t reflect.Type) Shape {
	if t == nil {
		return ShapeUnion
	}
	return infoOf(t).shape
}

var (
	pkgPath       = reflect.TypeFor[Pair[int, int]]().PkgPath()
	stringerType  = reflect.TypeFor[fmt.Stringer]()
	formatterType = reflect.TypeFor[fmt.Formatter]()
	errorType     = reflect.TypeFor[error]()
)

func classify(t reflect.Type) Shape {
	switch {
	case isOptional(t):
		return ShapeOptional
	case isGeneric(t, pkgPath, "Pair"):
		return ShapePair
	}

	if t.Kind() == reflect.Interface {
		return ShapeUnion
	}

	if hasTextMethod(t) {
		return ShapeAtomic
	}

	switch t.Kind() {
	case reflect.String:
		return ShapeString
	case reflect.Pointer:
		return ShapeOptional
	case reflect.Struct:
		if t.NumField() == 0 {
			return ShapeUnit
		}
		return ShapeTuple
	case reflect.Slice, reflect.Array, reflect.Map:
		return ShapeRange
	case reflect.Func:
		if _, ok := iterYield(t); ok {
			return ShapeRange
		}
		return ShapeOpaque
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return ShapeAtomic
	default:
		return ShapeOpaque
	}
}

// hasTextMethod reports whether t defines its own textual form.
func hasTextMethod(t reflect.Type) bool {
	return t.Implements(formatterType) || t.Implements(stringerType) || t.Implements(errorType)
}

// isOptional matches [Optional] and database/sql's Null[T]. Both keep the
// value in field 0 and the validity flag in field 1.
func isOptional(t reflect.Type) bool {
	return isGeneric(t, pkgPath, "Optional") || isGeneric(t, "database/sql", "Null")
}

// isGeneric reports whether t is an instantiation of the generic struct
// pkg.name. Types that merely embed one do not match.
func isGeneric(t reflect.Type, pkg, name string) bool {
	return t.Kind() == reflect.Struct && t.PkgPath() == pkg &&
		strings.HasPrefix(t.Name(), name+"[")
}

// iterYield returns the yield function type of an iter.Seq or iter.Seq2
// shaped func type.
func iterYield(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return nil, false
	}
	y := t.In(0)
	if y.Kind() != reflect.Func || y.IsVariadic() || y.NumOut() != 1 || y.Out(0).Kind() != reflect.Bool {
		return nil, false
	}
	if n := y.NumIn(); n != 1 && n != 2 {
		return nil, false
	}
	return y, true
}

// nests reports whether a composite of type t has children whose own shape
// is nestable. Map entries and two-value iterator entries are pairs and
// never nest; a struct nests when any of its fields does.
func nests(t reflect.Type, s Shape) bool {
	switch s {
	case ShapeRange:
		switch t.Kind() {
		case reflect.Slice, reflect.Array:
			return classify(t.Elem()).Nestable()
		case reflect.Func:
			y, _ := iterYield(t)
			return y.NumIn() == 1 && classify(y.In(0)).Nestable()
		}
	case ShapeTuple:
		for i := range t.NumField() {
			if classify(t.Field(i).Type).Nestable() {
				return true
			}
		}
	}
	return false
}
