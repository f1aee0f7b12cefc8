package vivo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugDump(t *testing.T) {
	t.Parallel()

	d := MustVivify(ref())

	var buf bytes.Buffer
	d.DebugDump(&buf)

	out := buf.String()

	assert.Contains(t, out, `"a"`)
	assert.Contains(t, out, `"f"`)
	assert.Contains(t, out, "(int) 3")
}

func TestString(t *testing.T) {
	t.Parallel()

	d := New()
	d.Set("b", 2)
	d.Set("a", 1)

	s := d.String()

	assert.Contains(t, s, "a:1")
	assert.Contains(t, s, "b:2")
}
