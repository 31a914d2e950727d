package vkng

// objects maps the opaque handles handed to the graphics package onto the
// wrapper's own object values.
type objects[H ~uint64, V any] struct {
	next   *uint64
	values map[H]V
}

func newObjects[H ~uint64, V any](next *uint64) objects[H, V] {
	return objects[H, V]{next: next, values: map[H]V{}}
}

func (o objects[H, V]) add(value V) H {
	*o.next++
	handle := H(*o.next)
	o.values[handle] = value
	return handle
}

func (o objects[H, V]) get(handle H) V {
	return o.values[handle]
}

// take removes handle and returns what it referred to.
func (o objects[H, V]) take(handle H) (V, bool) {
	value, ok := o.values[handle]
	delete(o.values, handle)
	return value, ok
}

func (o objects[H, V]) len() int {
	return len(o.values)
}
