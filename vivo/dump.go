package vivo

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	SpewKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// DebugDump writes a detailed, typed rendering of the tree to w.
func (d *Dict) DebugDump(w io.Writer) {
	dumpConfig.Fdump(w, d.ToMap())
}

func (d *Dict) String() string {
	return dumpConfig.Sprint(d.ToMap())
}
