package vector_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pzaino/vector/pkg/vector"
)

func intCmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func Test_Sort_Orders_Small_Range_Via_Insertion_Sort(t *testing.T) {
	t.Parallel()

	v := seeded(t, 5, 3, 4, 1, 2)

	require.NoError(t, v.Sort(intCmp))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, contents(t, v))
}

func Test_Sort_Orders_Large_Random_Range(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(42))

	v, err := vector.New[int]()
	require.NoError(t, err)

	want := make([]int, 500)
	for i := range want {
		val := r.Intn(1000)
		want[i] = val
		require.NoError(t, v.PushBack(val))
	}

	require.NoError(t, v.Sort(intCmp))

	got := contents(t, v)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1], got[i], "sorted output must be non-decreasing at index %d", i)
	}

	sumWant, sumGot := 0, 0
	for _, x := range want {
		sumWant += x
	}

	for _, x := range got {
		sumGot += x
	}

	assert.Equal(t, sumWant, sumGot, "sort must be a permutation, not lose or invent elements")
}

func Test_Sort_Handles_Many_Duplicate_Keys(t *testing.T) {
	t.Parallel()

	v, err := vector.New[int]()
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		require.NoError(t, v.PushBack(i % 3))
	}

	require.NoError(t, v.Sort(intCmp))

	got := contents(t, v)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1], got[i])
	}
}

func Test_Sort_Is_NoOp_For_Empty_Or_Singleton(t *testing.T) {
	t.Parallel()

	v, err := vector.New[int]()
	require.NoError(t, err)
	require.NoError(t, v.Sort(intCmp))

	require.NoError(t, v.PushBack(1))
	require.NoError(t, v.Sort(intCmp))
	assert.Equal(t, []int{1}, contents(t, v))
}
