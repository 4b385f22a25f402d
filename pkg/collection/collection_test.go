package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	out := Map([]int{1, 2, 3}, func(n int) int { return n * n })
	assert.Equal(t, []int{1, 4, 9}, out)
}

func TestFilter(t *testing.T) {
	out := Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, out)
}

func TestFirst(t *testing.T) {
	v, found := First([]string{"a", "bb", "ccc"}, func(s string) bool { return len(s) == 2 })
	assert.True(t, found)
	assert.Equal(t, "bb", v)

	_, found = First([]string{"a"}, func(s string) bool { return len(s) == 9 })
	assert.False(t, found)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"ADMIN", "STAFF"}, "STAFF"))
	assert.False(t, Contains([]string{"ADMIN", "STAFF"}, "VIEWER"))
}

func TestSumBy(t *testing.T) {
	type line struct{ amount float64 }
	lines := []line{{10.5}, {4.5}, {5}}
	assert.Equal(t, 20.0, SumBy(lines, func(l line) float64 { return l.amount }))
}

func TestGroupBy(t *testing.T) {
	groups := GroupBy([]int{1, 2, 3, 4, 5}, func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	assert.Equal(t, []int{2, 4}, groups["even"])
	assert.Equal(t, []int{1, 3, 5}, groups["odd"])
}

func TestSortByDoesNotMutateInput(t *testing.T) {
	in := []int{3, 1, 2}
	out := SortBy(in, func(a, b int) bool { return a < b })
	assert.Equal(t, []int{1, 2, 3}, out)
	assert.Equal(t, []int{3, 1, 2}, in)
}
