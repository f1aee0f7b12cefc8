package vivo

// Replace overwrites every leaf in the tree with val. The shape of the tree
// does not change.
func (d *Dict) Replace(val any) {
	_ = d.walkLeaves(func(any) (any, error) {
		return val, nil
	})
}

// Apply replaces every leaf v with the result of fn(v). fn is called exactly
// once per leaf, depth-first in key insertion order. The first error of fn
// stops the walk and is returned as is; leaves visited before it keep their
// new values, so work on a Clone when that matters.
func (d *Dict) Apply(fn func(any) (any, error)) error {
	return d.walkLeaves(fn)
}

// Map is Apply for a transformation that cannot fail.
func (d *Dict) Map(fn func(any) any) {
	_ = d.walkLeaves(func(val any) (any, error) {
		return fn(val), nil
	})
}

func (d *Dict) walkLeaves(fn func(any) (any, error)) error {
	for _, key := range d.keys {
		val := d.items[key]

		if child := asNode(val); child != nil {
			if err := child.walkLeaves(fn); err != nil {
				return err
			}
			continue
		}

		res, err := fn(val)
		if err != nil {
			return err
		}
		d.items[key] = res
	}

	return nil
}
