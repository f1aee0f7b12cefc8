package vivo

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
)

// ref returns the reference tree used across the tests.
func ref() map[string]any {
	return map[string]any{
		"a": 1,
		"b": map[string]any{"c": 2},
		"d": map[string]any{"e": map[string]any{"f": 3}},
	}
}

// randomTree builds a random nested map of at most maxDepth levels and
// returns it together with the number of its leaves.
func randomTree(faker *gofakeit.Faker, maxDepth int) (map[string]any, int) {
	var (
		tree   = make(map[string]any)
		leaves int
		width  = faker.Number(1, 5)
	)

	for i := 0; i < width; i++ {
		key := fmt.Sprintf("%s%d", faker.Word(), i)

		if maxDepth > 1 && faker.Bool() {
			sub, n := randomTree(faker, maxDepth-1)
			tree[key] = sub
			leaves += n
			continue
		}

		tree[key] = faker.Number(-1000, 1000)
		leaves++
	}

	return tree, leaves
}

func double(val any) (any, error) {
	n, ok := val.(int)
	if !ok {
		return nil, fmt.Errorf("not an int: %#v", val)
	}
	return n * 2, nil
}
