// Package vivo implements an auto-vivifying nested dictionary.
//
// A Dict maps comparable keys to values. A value is either another *Dict (a
// child node) or anything else (a leaf). Reading an absent key through At or
// Child never fails: an empty child Dict is created, stored under the key and
// returned, so deep paths can be built without creating the intermediate
// nodes by hand:
//
//	d := vivo.New()
//	c, _ := d.Child("a", "b")
//	c.Set("c", 1)
//	d.Equal(map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}}) // true
//
// Tree operations:
// ---------------
//
//   - Vivify  - recursive conversion of any mapping-shaped value into a Dict;
//   - Flatten - export into a single-level map with delimited compound keys;
//   - Replace - in-place overwrite of every leaf;
//   - Apply   - in-place transformation of every leaf.
//
// Vivify descends into every mapping-shaped value (Go maps, *Dict,
// yaml.MapSlice). Flatten, Replace and Apply descend into *Dict values only;
// a plain Go map stored inside a Dict is an opaque leaf for them.
//
// A Dict remembers key insertion order and every walk visits keys in that
// order. Dicts are not safe for concurrent use.
package vivo
