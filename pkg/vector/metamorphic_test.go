package vector_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pzaino/vector/pkg/vector"
	"github.com/pzaino/vector/pkg/vector/model"
)

// step applies one operation to both the real vector and the reference
// model and asserts they stay in agreement: a metamorphic pairing of a
// real implementation against a simple in-memory model.
type step func(t *testing.T, v *vector.Vector[int], m *model.Model[int])

func pushBack(val int) step {
	return func(t *testing.T, v *vector.Vector[int], m *model.Model[int]) {
		t.Helper()
		require.NoError(t, v.PushBack(val))
		m.PushBack(val)
	}
}

func pushFront(val int) step {
	return func(t *testing.T, v *vector.Vector[int], m *model.Model[int]) {
		t.Helper()
		require.NoError(t, v.PushFront(val))
		m.PushFront(val)
	}
}

func insertAt(i, val int) step {
	return func(t *testing.T, v *vector.Vector[int], m *model.Model[int]) {
		t.Helper()
		require.NoError(t, v.InsertAt(i, val, vector.ModeStrict))
		require.True(t, m.InsertAt(i, val))
	}
}

func removeAt(i int) step {
	return func(t *testing.T, v *vector.Vector[int], m *model.Model[int]) {
		t.Helper()

		wantVal, wantOK := m.RemoveAt(i)
		gotVal, err := v.RemoveAt(i, vector.ModeStrict)
		require.True(t, wantOK)
		require.NoError(t, err)
		assert.Equal(t, wantVal, gotVal)
	}
}

func deleteRange(start, offset int) step {
	return func(t *testing.T, v *vector.Vector[int], m *model.Model[int]) {
		t.Helper()
		require.NoError(t, v.DeleteRange(start, offset))
		require.True(t, m.DeleteRange(start, offset))
	}
}

func swap(i, j int) step {
	return func(t *testing.T, v *vector.Vector[int], m *model.Model[int]) {
		t.Helper()
		require.NoError(t, v.Swap(i, j))
		require.True(t, m.Swap(i, j))
	}
}

func rotateLeft(n int) step {
	return func(t *testing.T, v *vector.Vector[int], m *model.Model[int]) {
		t.Helper()
		require.NoError(t, v.RotateLeft(n))
		m.RotateLeft(n)
	}
}

func assertAgree(t *testing.T, v *vector.Vector[int], m *model.Model[int]) {
	t.Helper()

	require.Equal(t, m.Len(), v.Len(), "size mismatch between vector and reference model")

	got := make([]int, v.Len())
	for i := range got {
		val, err := v.Get(i)
		require.NoError(t, err)

		got[i] = val
	}

	assert.Empty(t, cmp.Diff(m.Items, got), "vector contents diverged from the reference model")
}

func Test_Metamorphic_NonCircular_Operation_Sequence_Matches_Model(t *testing.T) {
	t.Parallel()

	script := []step{
		pushBack(1),
		pushBack(2),
		pushBack(3),
		pushFront(0),
		insertAt(2, 99),
		removeAt(0),
		deleteRange(1, 1),
		pushBack(10),
		pushBack(11),
		pushBack(12),
		pushBack(13),
		swap(0, 3),
		rotateLeft(2),
		pushFront(-1),
		pushFront(-2),
		removeAt(1),
	}

	v, err := vector.New[int](vector.WithCapacity[int](2))
	require.NoError(t, err)

	m := model.New[int](false, 0)

	for i, s := range script {
		s(t, v, m)
		assertAgree(t, v, m)

		t.Logf("step %d: size=%d", i, v.Len())
	}
}

func Test_Metamorphic_Grow_Then_Shrink_Cycle_Matches_Model(t *testing.T) {
	t.Parallel()

	v, err := vector.New[int](vector.WithCapacity[int](4))
	require.NoError(t, err)

	m := model.New[int](false, 0)

	for i := 0; i < 200; i++ {
		pushBack(i)(t, v, m)
	}

	assertAgree(t, v, m)

	for i := 0; i < 190; i++ {
		removeAt(0)(t, v, m)
	}

	assertAgree(t, v, m)

	require.NoError(t, v.Shrink())
	assertAgree(t, v, m)
}

func Test_Metamorphic_Circular_PushBack_Sequence_Matches_Model(t *testing.T) {
	t.Parallel()

	v, err := vector.New[int](vector.WithCapacity[int](6), vector.WithCircular[int]())
	require.NoError(t, err)

	m := model.New[int](true, 6)

	// A new circular vector already holds capacity-1 zero values; the model
	// starts empty, so give it the same initial contents.
	m.Items = make([]int, v.Len())

	for i := 0; i < 50; i++ {
		pushBack(i)(t, v, m)
		assertAgree(t, v, m)
	}
}

func Test_Metamorphic_Clone_Forks_Independent_Histories(t *testing.T) {
	t.Parallel()

	v, err := vector.New[int]()
	require.NoError(t, err)

	m := model.New[int](false, 0)

	for i := 0; i < 10; i++ {
		pushBack(i)(t, v, m)
	}

	forkModel := m.Clone()
	forkModel.PushBack(999)

	assertAgree(t, v, m)
	assert.NotEqual(t, forkModel.Len(), v.Len(), "forked model history must not leak back into the original")
}
