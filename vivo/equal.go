package vivo

import "reflect"

// Equal compares contents. other may be a *Dict or any mapping-shaped value;
// nested mappings compare by their pairs whatever their concrete types, key
// order is ignored and leaves compare with reflect.DeepEqual.
func (d *Dict) Equal(other any) bool {
	if !isMapping(other) {
		return false
	}
	return equalMappings(d, other)
}

func equalMappings(a, b any) bool {
	pa, pb := pairsOf(a), pairsOf(b)
	if len(pa) != len(pb) {
		return false
	}

	for key, va := range pa {
		vb, ok := pb[key]
		if !ok || !equalValues(va, vb) {
			return false
		}
	}

	return true
}

func equalValues(a, b any) bool {
	ma, mb := isMapping(a), isMapping(b)

	switch {
	case ma && mb:
		return equalMappings(a, b)
	case ma || mb:
		return false
	}

	return reflect.DeepEqual(a, b)
}

func pairsOf(m any) map[any]any {
	if d, ok := m.(*Dict); ok {
		return d.items
	}

	out := make(map[any]any)
	_ = eachPair(m, func(key, val any) error {
		out[key] = val
		return nil
	})

	return out
}
