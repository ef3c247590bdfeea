package schash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPrime(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{1, 3},
		{2, 3},
		{3, 3},
		{4, 5},
		{9, 11},
		{100, 101},
		{101, 101},
		{102, 103},
		{203, 211},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, nextPrime(tt.in), "nextPrime(%d)", tt.in)
	}
}

func TestIsPrime(t *testing.T) {
	primes := []int{2, 3, 5, 7, 11, 97, 101, 211, 7919}
	for _, p := range primes {
		assert.True(t, isPrime(p), "%d should be prime", p)
	}

	composites := []int{1, 4, 9, 15, 25, 49, 100, 203, 7917}
	for _, c := range composites {
		assert.False(t, isPrime(c), "%d should not be prime", c)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 0, normalize(0, 101))
	assert.Equal(t, 5, normalize(5, 101))
	assert.Equal(t, 0, normalize(101, 101))
	assert.Equal(t, 96, normalize(-5, 101))
	assert.Equal(t, 0, normalize(-101, 101))
}

type collider struct {
	name string
}

func (c collider) Hash() int                { return 7 }
func (c collider) Equal(other collider) bool { return c.name == other.name }

func chainSum[T Hasher[T]](tbl *Table[T]) int {
	n := 0
	for _, chain := range tbl.buckets {
		n += len(chain)
	}
	return n
}

func TestRemovePreservesChainOrder(t *testing.T) {
	tbl := New[collider]()
	for _, name := range []string{"a", "b", "c", "d"} {
		tbl.Insert(collider{name})
	}

	tbl.Remove(collider{"b"})

	require.Equal(t, []collider{{"a"}, {"c"}, {"d"}}, tbl.buckets[7])
	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, tbl.Len(), chainSum(tbl))

	tbl.Remove(collider{"d"})
	tbl.Remove(collider{"a"})
	require.Equal(t, []collider{{"c"}}, tbl.buckets[7])
	assert.Equal(t, tbl.Len(), chainSum(tbl))
}

func TestRehashKeepsBucketThenChainOrder(t *testing.T) {
	tbl, err := NewWithSize[collider](1)
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Buckets())

	for _, name := range []string{"w", "x", "y", "z"} {
		tbl.Insert(collider{name})
	}

	// 4 > 3 buckets, so the table grew to nextPrime(7) = 7
	require.Equal(t, 1, tbl.Grows())
	require.Equal(t, 7, tbl.Buckets())
	assert.Equal(t, []collider{{"w"}, {"x"}, {"y"}, {"z"}}, tbl.buckets[0])
	assert.Equal(t, 4, chainSum(tbl))
}

func TestMakeEmptyClearsChains(t *testing.T) {
	tbl := New[collider]()
	tbl.Insert(collider{"a"})
	tbl.Insert(collider{"b"})

	tbl.MakeEmpty()

	for i, chain := range tbl.buckets {
		assert.Empty(t, chain, "bucket %d", i)
	}
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, DefaultSize, tbl.Buckets())
}
