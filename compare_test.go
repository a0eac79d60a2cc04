package binstring

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqualHashCompareConsistent(t *testing.T) {
	for _, h := range haystacks {
		a := FromBytes(h)
		b := CopyBytes(h)
		require.True(t, a.Equal(b))
		require.Equal(t, a.Hash(), b.Hash())
		require.Equal(t, 0, a.Compare(b))
	}
}

func TestNilAndEmptyAreEqual(t *testing.T) {
	a := FromBytes(nil)
	b := FromBytes([]byte{})
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
	require.Equal(t, 0, Compare(a, b))
}

func TestCompare(t *testing.T) {
	for _, tc := range []struct {
		a, b []byte
		want int
	}{
		{[]byte{1}, []byte{2}, -1},
		{[]byte{2}, []byte{1}, 1},
		{[]byte{}, []byte{0}, -1},
		{[]byte("ab"), []byte("abc"), -1},
		{[]byte{0x80}, []byte{0x7f, 0xff}, 1},
		{[]byte("same"), []byte("same"), 0},
	} {
		require.Equal(t, tc.want, FromBytes(tc.a).Compare(FromBytes(tc.b)), "%q vs %q", tc.a, tc.b)
	}
}

func TestSort(t *testing.T) {
	xs := []BinString{
		FromBytes([]byte{0xff}),
		FromString("b"),
		FromString(""),
		FromString("ab"),
		FromString("a"),
	}
	slices.SortFunc(xs, Compare)

	got := make([]string, len(xs))
	for i, x := range xs {
		got[i] = x.String()
	}
	require.Equal(t, []string{"", "a", "ab", "b", "\xff"}, got)
}

func TestHashDeterministic(t *testing.T) {
	// xxhash64 of the empty input
	require.Equal(t, uint64(0xef46db3751d8e999), BinString{}.Hash())
	require.NotEqual(t, FromString("a").Hash(), FromString("b").Hash())
}
