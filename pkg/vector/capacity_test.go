package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pzaino/vector/pkg/vector"
)

func Test_PushBack_Grows_Capacity_As_Needed(t *testing.T) {
	t.Parallel()

	v, err := vector.New[int](vector.WithCapacity[int](2))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		require.NoError(t, v.PushBack(i))
	}

	assert.Equal(t, 20, v.Len())
	assert.GreaterOrEqual(t, v.Cap(), 20)

	for i := 0; i < 20; i++ {
		got, err := v.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
}

func Test_PushFront_Grows_Left_Capacity_Without_Disturbing_Order(t *testing.T) {
	t.Parallel()

	v, err := vector.New[int](vector.WithCapacity[int](2))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		require.NoError(t, v.PushFront(i))
	}

	assert.Equal(t, 20, v.Len())

	for i := 0; i < 20; i++ {
		got, err := v.Get(i)
		require.NoError(t, err)
		assert.Equal(t, 19-i, got)
	}
}

func Test_RemoveAt_Shrinks_Capacity_Once_Size_Falls_Well_Below_It(t *testing.T) {
	t.Parallel()

	v, err := vector.New[int](vector.WithCapacity[int](4))
	require.NoError(t, err)

	for i := 0; i < 64; i++ {
		require.NoError(t, v.PushBack(i))
	}

	bigCap := v.Cap()

	for i := 0; i < 60; i++ {
		_, err := v.PopBack()
		require.NoError(t, err)
	}

	assert.Equal(t, 4, v.Len())
	assert.Less(t, v.Cap(), bigCap, "capacity should shrink once size is far below it")
}

func Test_Shrink_Compresses_To_Near_Current_Size(t *testing.T) {
	t.Parallel()

	v, err := vector.New[int](vector.WithCapacity[int](8))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		require.NoError(t, v.PushBack(i))
	}

	for i := 0; i < 95; i++ {
		_, err := v.PopFront()
		require.NoError(t, err)
	}

	require.NoError(t, v.Shrink())

	assert.Equal(t, 5, v.Len())
	assert.LessOrEqual(t, v.Cap(), 8+5+2, "Shrink should bring capacity close to size")

	for i := 0; i < 5; i++ {
		got, err := v.Get(i)
		require.NoError(t, err)
		assert.Equal(t, 95+i, got)
	}
}

func Test_Shrink_Is_NoOp_For_Circular_Vector(t *testing.T) {
	t.Parallel()

	v, err := vector.New[int](vector.WithCapacity[int](4), vector.WithCircular[int]())
	require.NoError(t, err)

	capBefore := v.Cap()
	require.NoError(t, v.Shrink())
	assert.Equal(t, capBefore, v.Cap())
}
