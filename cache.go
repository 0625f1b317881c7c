package pretty

import (
	"reflect"

	"github.com/tidwall/tinylru"
)

// typeInfo is everything the printer needs to know about a type, computed
// once and reused for every value of that type.
type typeInfo struct {
	name  string
	shape Shape
	// nests is set for composites whose children are nestable.
	nests bool
}

var infos tinylru.LRU

func infoOf(t reflect.Type) typeInfo {
	if v, ok := infos.Get(t); ok {
		return v.(typeInfo)
	}
	shape := classify(t)
	info := typeInfo{
		name:  resolveName(t),
		shape: shape,
		nests: nests(t, shape),
	}
	infos.Set(t, info)
	return info
}
