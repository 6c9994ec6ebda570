package reactivity

import "reflect"

// Object wraps a plain map so that reads through Get are tracked and writes
// through Set notify. Values are stored as-is, nested maps are not wrapped.
type Object[K comparable] struct {
	engine *Engine
	raw    map[K]any
}

// Reactive returns the tracked wrapper for raw. All further access has to go
// through the wrapper to take part in the graph. Wrapping the same map again
// returns the same Object.
func Reactive[K comparable](e *Engine, raw map[K]any) *Object[K] {
	if raw == nil {
		raw = map[K]any{}
	}

	id := reflect.ValueOf(raw).UnsafePointer()
	if existing, ok := e.objects[id]; ok {
		return existing.(*Object[K])
	}

	o := &Object[K]{engine: e, raw: raw}
	e.objects[id] = o
	return o
}

func (o *Object[K]) Engine() *Engine {
	return o.engine
}

// Get tracks key and returns its value, nil when absent.
func (o *Object[K]) Get(key K) any {
	o.engine.Track(o, key)
	return o.raw[key]
}

// Lookup is Get with a presence flag.
func (o *Object[K]) Lookup(key K) (any, bool) {
	o.engine.Track(o, key)
	v, ok := o.raw[key]
	return v, ok
}

func (o *Object[K]) Has(key K) bool {
	_, ok := o.Lookup(key)
	return ok
}

// Set stores value and then notifies everything that read key. Every write
// notifies, equal values included. Adding a new key also notifies readers of
// Keys and Len.
func (o *Object[K]) Set(key K, value any) {
	_, had := o.raw[key]
	o.raw[key] = value
	o.engine.Trigger(o, key)
	if !had {
		o.engine.Trigger(o, iterateKey)
	}
}

// Update is a tracked read followed by Set, the equivalent of obj.key++.
func (o *Object[K]) Update(key K, fn func(old any) any) {
	o.Set(key, fn(o.Get(key)))
}

func (o *Object[K]) Delete(key K) {
	if _, had := o.raw[key]; !had {
		return
	}
	delete(o.raw, key)
	o.engine.Trigger(o, key)
	o.engine.Trigger(o, iterateKey)
}

// Keys returns the current keys in no particular order and tracks the key
// set, so adding or deleting a key re-runs the reader.
func (o *Object[K]) Keys() []K {
	o.engine.Track(o, iterateKey)
	keys := make([]K, 0, len(o.raw))
	for k := range o.raw {
		keys = append(keys, k)
	}
	return keys
}

func (o *Object[K]) Len() int {
	o.engine.Track(o, iterateKey)
	return len(o.raw)
}

// Raw returns the wrapped map. Access through it is invisible to the graph.
func (o *Object[K]) Raw() map[K]any {
	return o.raw
}

// eachTracked reads every key, which is what deep watching relies on.
func (o *Object[K]) eachTracked(fn func(value any)) {
	for _, k := range o.Keys() {
		fn(o.Get(k))
	}
}

// GetAs is Get with a type assertion, returning the zero value for absent
// or nil entries. A value of another type panics.
func GetAs[T any, K comparable](o *Object[K], key K) T {
	v := o.Get(key)
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}
