package vivo

import "fmt"

// DefaultDelimiter joins path segments in Flatten.
const DefaultDelimiter = "."

// Flatten is FlattenWith(DefaultDelimiter).
func (d *Dict) Flatten() map[string]any {
	return d.FlattenWith(DefaultDelimiter)
}

// FlattenWith exports the tree into a single-level map. A leaf under the path
// k1, k2, ..., kN ends up under the key "k1<delim>k2<delim>...kN", each key
// rendered with fmt.Sprint. Only *Dict values are descended into; empty ones
// contribute nothing.
//
// Keys are not escaped, so different paths may render the same flat key (a
// key "b.c" next to a path b -> c), and keys of different types may render
// alike (1 and "1" both become "1"). The pair visited later wins, following
// the insertion order of the Dicts.
func (d *Dict) FlattenWith(delim string) map[string]any {
	out := make(map[string]any)
	d.flatten(out, "", delim)
	return out
}

func (d *Dict) flatten(out map[string]any, prefix, delim string) {
	for _, key := range d.keys {
		var (
			val  = d.items[key]
			name = prefix + fmt.Sprint(key)
		)

		if child := asNode(val); child != nil {
			child.flatten(out, name+delim, delim)
			continue
		}

		out[name] = val
	}
}

// asNode returns the value as a child Dict, or nil for a leaf.
func asNode(val any) *Dict {
	child, _ := val.(*Dict)
	return child
}
