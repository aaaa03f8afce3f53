package strq_test

import (
	"slices"
	"testing"

	"deedles.dev/strq"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, q *strq.Queue) []string {
	t.Helper()

	var got []string
	buf := make([]byte, 64)
	for q.Size() > 0 {
		n, ok := q.RemoveHead(buf)
		require.True(t, ok)
		got = append(got, string(buf[:n]))
	}
	return got
}

func TestQueueInsertRemove(t *testing.T) {
	q := strq.New()
	require.True(t, q.InsertTail("b"))
	require.True(t, q.InsertHead("a"))
	require.True(t, q.InsertTail("c"))
	require.Equal(t, 3, q.Size())
	require.Equal(t, "[a b c]", q.String())

	v, ok := q.Head()
	require.True(t, ok)
	require.Equal(t, "a", v)

	require.Equal(t, []string{"a", "b", "c"}, drain(t, q))
	require.Equal(t, 0, q.Size())

	// Inserting at the tail after draining must rebuild the head.
	require.True(t, q.InsertTail("d"))
	v, ok = q.PopHead()
	require.True(t, ok)
	require.Equal(t, "d", v)
}

func TestQueueSize(t *testing.T) {
	q := strq.New()
	var want int
	for i := range 100 {
		switch i % 3 {
		case 0:
			q.InsertHead("x")
			want++
		case 1:
			q.InsertTail("y")
			want++
		case 2:
			if _, ok := q.RemoveHead(nil); ok {
				want--
			}
		}
		if q.Size() != want {
			t.Fatalf("step %v: size %v != %v", i, q.Size(), want)
		}
	}
}

func TestQueueRemoveHeadTruncates(t *testing.T) {
	q := strq.New()
	q.InsertTail("abcdef")
	q.InsertTail("gh")
	q.InsertTail("ij")

	buf := []byte("zzzz")
	n, ok := q.RemoveHead(buf)
	require.True(t, ok)
	require.Equal(t, 3, n)
	require.Equal(t, []byte("abc\x00"), buf)

	buf = []byte("zzzzz")
	n, ok = q.RemoveHead(buf)
	require.True(t, ok)
	require.Equal(t, 2, n)
	require.Equal(t, []byte("gh\x00zz"), buf)

	buf = []byte("z")
	n, ok = q.RemoveHead(buf)
	require.True(t, ok)
	require.Equal(t, 0, n)
	require.Equal(t, []byte{0}, buf)
}

func TestQueueRemoveHeadEmpty(t *testing.T) {
	q := strq.New()
	buf := []byte("xyz")
	n, ok := q.RemoveHead(buf)
	require.False(t, ok)
	require.Equal(t, 0, n)
	require.Equal(t, []byte("xyz"), buf)
}

func TestQueueValueCutAtNUL(t *testing.T) {
	q := strq.New()
	q.InsertTail("abc\x00def")
	v, ok := q.PopHead()
	require.True(t, ok)
	require.Equal(t, "abc", v)
}

func TestQueueNil(t *testing.T) {
	var q *strq.Queue
	require.False(t, q.InsertHead("a"))
	require.False(t, q.InsertTail("a"))

	buf := []byte("xyz")
	_, ok := q.RemoveHead(buf)
	require.False(t, ok)
	require.Equal(t, []byte("xyz"), buf)

	_, ok = q.PopHead()
	require.False(t, ok)
	_, ok = q.Head()
	require.False(t, ok)

	q.Reverse()
	q.Sort()
	q.Free()
	require.Equal(t, 0, q.Size())
	require.Equal(t, "NULL", q.String())
	require.Empty(t, slices.Collect(q.All()))
}

func TestQueueReverse(t *testing.T) {
	q := strq.New()
	q.Reverse()
	require.Equal(t, 0, q.Size())

	q.InsertHead("a")
	q.InsertHead("b")
	q.InsertHead("c")
	q.Reverse()
	require.Equal(t, []string{"a", "b", "c"}, slices.Collect(q.All()))

	q.Reverse()
	q.Reverse()
	require.Equal(t, []string{"a", "b", "c"}, slices.Collect(q.All()))

	q.InsertTail("d")
	require.Equal(t, []string{"a", "b", "c", "d"}, drain(t, q))
}

func TestQueueSort(t *testing.T) {
	q := strq.New()
	q.Sort()
	require.Equal(t, 0, q.Size())

	q.InsertTail("banana")
	q.InsertTail("Apple")
	q.InsertTail("cherry")
	q.Sort()
	require.Equal(t, []string{"Apple", "banana", "cherry"}, drain(t, q))
}

func TestQueueSortStable(t *testing.T) {
	q := strq.New()
	for _, v := range []string{"b", "Banana", "a", "banana", "BANANA", "A"} {
		q.InsertTail(v)
	}
	q.Sort()
	want := []string{"a", "A", "b", "Banana", "banana", "BANANA"}
	require.Equal(t, want, slices.Collect(q.All()))

	q.Sort()
	require.Equal(t, want, slices.Collect(q.All()))

	q.InsertTail("z")
	require.Equal(t, append(want, "z"), drain(t, q))
}

func TestQueueFree(t *testing.T) {
	q := strq.New()
	for range 100_000 {
		q.InsertTail("v")
	}
	q.Free()
	require.Equal(t, 0, q.Size())
	require.True(t, q.InsertHead("again"))
	require.Equal(t, 1, q.Size())
}

func BenchmarkQueue(b *testing.B) {
	var q strq.Queue
	buf := make([]byte, 16)
	for range b.N {
		q.InsertTail("value")
		q.RemoveHead(buf)
	}
}
