package vivo

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/goccy/go-yaml"
)

// MaxDepth bounds the nesting Vivify accepts. Self-referencing Go maps run
// into it as well.
var MaxDepth = 10000

// Vivify converts a mapping-shaped value into a new Dict. Mapping-shaped are
// Go maps of any type, non-nil *Dict values and yaml.MapSlice. Every mapping
// found at any depth becomes a fresh *Dict, including *Dict values, so the
// result never aliases a node of src. Any other value is stored as is: leaves
// are shared with src, not copied.
//
// *Dict and yaml.MapSlice keep their key order. Keys of Go maps are sorted:
// numbers numerically, strings lexically, anything else by its fmt form.
func Vivify(src any) (*Dict, error) {
	if !isMapping(src) {
		return nil, fmt.Errorf("%w: %T", ErrInvalidInputKind, src)
	}
	return vivify(src, 0)
}

// MustVivify is like Vivify but panics on error.
func MustVivify(src any) *Dict {
	d, err := Vivify(src)
	if err != nil {
		panic(err)
	}
	return d
}

func vivify(src any, depth int) (*Dict, error) {
	if depth >= MaxDepth {
		return nil, fmt.Errorf("%w: more than %d levels", ErrTooDeep, MaxDepth)
	}

	out := New()

	err := eachPair(src, func(key, val any) error {
		if isMapping(val) {
			child, err := vivify(val, depth+1)
			if err != nil {
				return err
			}
			val = child
		}
		out.Set(key, val)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func isMapping(v any) bool {
	switch m := v.(type) {
	case nil:
		return false
	case *Dict:
		return m != nil
	case yaml.MapSlice:
		return true
	}
	return reflect.TypeOf(v).Kind() == reflect.Map
}

// eachPair calls fn for every pair of a mapping-shaped value until fn fails.
func eachPair(src any, fn func(key, val any) error) error {
	switch m := src.(type) {
	case *Dict:
		for _, key := range m.keys {
			if err := fn(key, m.items[key]); err != nil {
				return err
			}
		}
		return nil

	case yaml.MapSlice:
		for _, item := range m {
			if err := fn(item.Key, item.Value); err != nil {
				return err
			}
		}
		return nil
	}

	// MapRange rather than MapIndex: a NaN key can never be looked up again.
	var (
		rv    = reflect.ValueOf(src)
		pairs = make([]pair, 0, rv.Len())
	)

	for it := rv.MapRange(); it.Next(); {
		pairs = append(pairs, pair{it.Key().Interface(), it.Value().Interface()})
	}

	sort.Slice(pairs, func(i, j int) bool {
		a, b := pairs[i], pairs[j]
		switch {
		case lessKey(a.key, b.key):
			return true
		case lessKey(b.key, a.key):
			return false
		}
		// only several NaN keys get this far
		return fmt.Sprint(a.val) < fmt.Sprint(b.val)
	})

	for _, p := range pairs {
		if err := fn(p.key, p.val); err != nil {
			return err
		}
	}

	return nil
}

type pair struct {
	key, val any
}

const (
	classNil = iota
	classInt
	classUint
	classFloat
	classString
	classOther
)

func keyClass(v reflect.Value) int {
	switch v.Kind() {
	case reflect.Invalid:
		return classNil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return classInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUint
	case reflect.Float32, reflect.Float64:
		return classFloat
	case reflect.String:
		return classString
	}
	return classOther
}

// lessKey orders keys by class, then by value, then by type name. NaN sorts
// before every other float.
func lessKey(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)

	ca, cb := keyClass(ra), keyClass(rb)
	if ca != cb {
		return ca < cb
	}

	switch ca {
	case classNil:
		return false
	case classInt:
		if x, y := ra.Int(), rb.Int(); x != y {
			return x < y
		}
	case classUint:
		if x, y := ra.Uint(), rb.Uint(); x != y {
			return x < y
		}
	case classFloat:
		x, y := ra.Float(), rb.Float()
		if nx, ny := math.IsNaN(x), math.IsNaN(y); nx != ny {
			return nx
		}
		if x != y && !math.IsNaN(x) {
			return x < y
		}
	case classString:
		if x, y := ra.String(), rb.String(); x != y {
			return x < y
		}
	default:
		if x, y := fmt.Sprint(a), fmt.Sprint(b); x != y {
			return x < y
		}
	}

	return fmt.Sprintf("%T", a) < fmt.Sprintf("%T", b)
}
