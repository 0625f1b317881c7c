package pretty

import (
	"cmp"
	"reflect"
	"slices"
	"strings"

	"github.com/maruel/natural"
)

// sortedKeys returns the keys of map m in a deterministic order.
func sortedKeys(m reflect.Value, naturalOrder bool) []reflect.Value {
	keys := m.MapKeys()
	slices.SortStableFunc(keys, func(a, b reflect.Value) int {
		return compareKeys(a, b, naturalOrder)
	})
	return keys
}

func compareKeys(a, b reflect.Value, naturalOrder bool) int {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.Complex64, reflect.Complex128:
		ac, bc := a.Complex(), b.Complex()
		if c := cmp.Compare(real(ac), real(bc)); c != 0 {
			return c
		}
		return cmp.Compare(imag(ac), imag(bc))
	case reflect.String:
		if naturalOrder {
			return compareNatural(a.String(), b.String())
		}
		return strings.Compare(a.String(), b.String())
	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0
		case !a.Bool():
			return -1
		default:
			return 1
		}
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return cmp.Compare(a.Pointer(), b.Pointer())
	case reflect.Array:
		for i := range a.Len() {
			if c := compareKeys(a.Index(i), b.Index(i), naturalOrder); c != 0 {
				return c
			}
		}
	case reflect.Struct:
		for i := range a.NumField() {
			if c := compareKeys(a.Field(i), b.Field(i), naturalOrder); c != 0 {
				return c
			}
		}
	case reflect.Interface:
		switch {
		case a.IsNil() && b.IsNil():
			return 0
		case a.IsNil():
			return -1
		case b.IsNil():
			return 1
		}
		ae, be := a.Elem(), b.Elem()
		if ae.Type() != be.Type() {
			return strings.Compare(NameOf(ae.Type()), NameOf(be.Type()))
		}
		return compareKeys(ae, be, naturalOrder)
	}
	return 0
}

func compareNatural(a, b string) int {
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	default:
		return strings.Compare(a, b)
	}
}
