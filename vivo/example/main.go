package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/aglyzov/go-vivo/vivo"
)

const metrics = `
host: web-1
cpu:
  user: 12
  system: 3
disk:
  sda:
    reads: 1024
    writes: 512
`

func main() {
	var src yaml.MapSlice
	if err := yaml.UnmarshalWithOptions([]byte(metrics), &src, yaml.UseOrderedMap()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	d, err := vivo.Vivify(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// grow a new branch without creating the intermediate nodes
	net, _ := d.Child("net", "eth0")
	net.Set("rx", 4096)

	d.DebugDump(os.Stdout)

	println("------")

	printFlat(d.Flatten())

	println("------")

	d.Replace(0)
	printFlat(d.FlattenWith("/"))
}

func printFlat(flat map[string]any) {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Printf("%s = %v\n", k, flat[k])
	}
}
