package pretty

import (
	"reflect"
	"strings"
)

// emptyInterface is the canonical spelling reflect uses for any. It is
// computed once rather than hard-coded.
var emptyInterface = reflect.TypeFor[any]().String()

// TypeName returns the display name of the static type T, for example
// "[]int", "map[string]any" or "pretty.Pair[int,string]". Package
// qualifiers are kept as they are.
func TypeName[T any]() string {
	return NameOf(reflect.TypeFor[T]())
}

// NameOf returns the display name of t. A nil type is named "nil".
func NameOf(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return infoOf(t).name
}

func resolveName(t reflect.Type) string {
	return rewriteSpelling(t.String(), emptyInterface, "any")
}

// rewriteSpelling replaces each spelling of a reference type inside name.
func rewriteSpelling(name, spelling, alias string) string {
	if spelling == "" || spelling == alias {
		return name
	}
	return strings.ReplaceAll(name, spelling, alias)
}
