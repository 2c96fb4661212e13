package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	t.Parallel()

	keys := SortedKeys(map[string]int{"b": 1, "c": 2, "a": 3})
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestSet(t *testing.T) {
	t.Parallel()

	set := Set([]int64{1, 2, 2})
	assert.Len(t, set, 2)
	assert.Contains(t, set, int64(1))
	assert.Empty(t, Set([]string(nil)))
}
