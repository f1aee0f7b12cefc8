package vivo

// Dict is an insertion-ordered dictionary whose absent keys auto-vivify into
// empty child Dicts. The zero value is an empty Dict ready to use.
type Dict struct {
	keys  []any
	items map[any]any
}

func New() *Dict {
	return &Dict{}
}

// Len returns the number of keys on this level.
func (d *Dict) Len() int {
	return len(d.keys)
}

func (d *Dict) Empty() bool {
	return len(d.keys) == 0
}

// Has reports whether the key is present. It never vivifies.
func (d *Dict) Has(key any) bool {
	_, ok := d.items[key]
	return ok
}

// Get returns the value stored under the key. It never vivifies.
func (d *Dict) Get(key any) (val any, ok bool) {
	val, ok = d.items[key]
	return
}

// At returns the value stored under the key. An absent key gets a new empty
// *Dict stored under it, and that Dict is returned; later calls return the
// same instance.
func (d *Dict) At(key any) any {
	if val, ok := d.items[key]; ok {
		return val
	}

	child := New()
	d.Set(key, child)

	return child
}

// Child walks the path of keys, vivifying every absent step, and returns the
// Dict at its end. Without keys it returns d itself. A leaf on the path stops
// the walk with ErrLeafInPath; nothing is created beyond it.
func (d *Dict) Child(keys ...any) (*Dict, error) {
	cur := d

	for i, key := range keys {
		next := asNode(cur.At(key))
		if next == nil {
			path := append([]any(nil), keys[:i+1]...)
			return nil, &PathError{Path: path, Err: ErrLeafInPath}
		}
		cur = next
	}

	return cur, nil
}

// Lookup follows the path of keys without vivifying anything.
func (d *Dict) Lookup(keys ...any) (any, bool) {
	var val any = d

	for _, key := range keys {
		cur := asNode(val)
		if cur == nil {
			return nil, false
		}

		var ok bool
		if val, ok = cur.items[key]; !ok {
			return nil, false
		}
	}

	return val, true
}

// Set stores the value under the key. A new key goes to the end of the key
// order, an existing one keeps its position. The key must be comparable.
func (d *Dict) Set(key, val any) {
	if d.items == nil {
		d.items = make(map[any]any)
	}
	if _, ok := d.items[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.items[key] = val
}

// Delete removes the key and returns its previous value.
func (d *Dict) Delete(key any) (any, bool) {
	prev, ok := d.items[key]
	if !ok {
		return nil, false
	}

	delete(d.items, key)

	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}

	return prev, true
}

// Keys returns a copy of the keys in insertion order.
func (d *Dict) Keys() []any {
	return append([]any(nil), d.keys...)
}

// Values returns the values in key insertion order.
func (d *Dict) Values() []any {
	vals := make([]any, 0, len(d.keys))
	for _, key := range d.keys {
		vals = append(vals, d.items[key])
	}
	return vals
}

// Range calls fn for every key-value pair in insertion order until fn
// returns false. Values of visited keys may be reassigned from fn.
func (d *Dict) Range(fn func(key, val any) bool) {
	for _, key := range d.Keys() {
		val, ok := d.items[key]
		if !ok {
			continue // deleted by fn
		}
		if !fn(key, val) {
			return
		}
	}
}

// Clone returns a deep copy of the Dict skeleton. Leaves are shared with d.
func (d *Dict) Clone() *Dict {
	out := &Dict{
		keys:  make([]any, 0, len(d.keys)),
		items: make(map[any]any, len(d.keys)),
	}

	for _, key := range d.keys {
		val := d.items[key]
		if child := asNode(val); child != nil {
			val = child.Clone()
		}
		out.keys = append(out.keys, key)
		out.items[key] = val
	}

	return out
}

// ToMap exports the tree as nested plain maps: every *Dict becomes a map[any]any.
func (d *Dict) ToMap() map[any]any {
	out := make(map[any]any, len(d.keys))

	for _, key := range d.keys {
		val := d.items[key]
		if child := asNode(val); child != nil {
			val = child.ToMap()
		}
		out[key] = val
	}

	return out
}
