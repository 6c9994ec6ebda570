package reactivity

import (
	"reflect"
	"unsafe"

	mapset "github.com/deckarep/golang-set/v2"
)

type traversable interface {
	eachTracked(fn func(value any))
}

type sliceID struct {
	data unsafe.Pointer
	len  int
}

// traverse reads everything reachable from value depth first so that the
// running effect depends on the whole subtree. seen guards against cycles by
// identity.
func traverse(value any, seen mapset.Set[any]) {
	if value == nil {
		return
	}
	if t, ok := value.(traversable); ok {
		if !seen.Add(t) {
			return
		}
		t.eachTracked(func(child any) {
			traverse(child, seen)
		})
		return
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() || !seen.Add(rv.UnsafePointer()) {
			return
		}
		traverseValue(rv.Elem(), seen)
	case reflect.Map:
		if rv.IsNil() || !seen.Add(rv.UnsafePointer()) {
			return
		}
		iter := rv.MapRange()
		for iter.Next() {
			traverseValue(iter.Value(), seen)
		}
	case reflect.Slice:
		if rv.IsNil() || !seen.Add(sliceID{data: rv.UnsafePointer(), len: rv.Len()}) {
			return
		}
		for i := 0; i < rv.Len(); i++ {
			traverseValue(rv.Index(i), seen)
		}
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			traverseValue(rv.Index(i), seen)
		}
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			traverseValue(rv.Field(i), seen)
		}
	}
}

func traverseValue(rv reflect.Value, seen mapset.Set[any]) {
	if !rv.IsValid() || !rv.CanInterface() {
		return
	}
	traverse(rv.Interface(), seen)
}
