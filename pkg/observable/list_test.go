package observable

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestAppendPublishesNewSnapshot(t *testing.T) {
	l := NewList[int]()
	before := l.Snapshot()

	l.Append(1)
	l.Append(2)

	assert.Empty(t, before)
	assert.Equal(t, []int{1, 2}, l.Snapshot())
}

func TestSnapshotIsACopy(t *testing.T) {
	l := NewList[string]()
	l.Append("a")

	snap := l.Snapshot()
	snap[0] = "mutated"

	assert.Equal(t, []string{"a"}, l.Snapshot())
}

func TestUpdateWithoutChangeDoesNotNotify(t *testing.T) {
	l := NewList[int]()
	calls := 0
	l.Subscribe(func([]int) { calls++ })

	changed := l.Update(func(cur []int) ([]int, bool) { return cur, false })

	assert.False(t, changed)
	assert.Zero(t, calls)
}

func TestSubscribersNotifiedInOrderAfterPublish(t *testing.T) {
	l := NewList[int]()
	var seen []string

	l.Subscribe(func(s []int) {
		// the published snapshot is already visible to readers
		require.Equal(t, s, l.Snapshot())
		seen = append(seen, "first")
	})
	l.Subscribe(func([]int) { seen = append(seen, "second") })

	l.Append(7)

	assert.Equal(t, []string{"first", "second"}, seen)
}

func TestCancelSubscription(t *testing.T) {
	l := NewList[int]()
	calls := 0
	cancel := l.Subscribe(func([]int) { calls++ })

	l.Append(1)
	cancel()
	cancel()
	l.Append(2)

	assert.Equal(t, 1, calls)
	assert.Empty(t, *l.subs.Load())
}

func TestCancelFromInsideSubscriber(t *testing.T) {
	l := NewList[int]()
	calls := 0
	var cancel func()
	cancel = l.Subscribe(func([]int) {
		calls++
		cancel()
	})

	l.Append(1)
	l.Append(2)

	assert.Equal(t, 1, calls)
	assert.Empty(t, *l.subs.Load())
}

type box struct {
	vals []int
}

func cloneBox(b box) box {
	b.vals = slices.Clone(b.vals)
	return b
}

func TestCloneKeepsElementsPrivate(t *testing.T) {
	l := NewListWithClone(cloneBox)

	in := box{vals: []int{1, 2}}
	l.Append(in)
	in.vals[0] = 99

	snap := l.Snapshot()
	snap[0].vals[1] = 77

	found, ok := l.Find(func(box) bool { return true })
	require.True(t, ok)
	found.vals[0] = 55

	var notified []box
	l.Subscribe(func(s []box) { notified = s })
	l.Update(func(cur []box) ([]box, bool) {
		return append(slices.Clone(cur), box{vals: []int{3}}), true
	})
	notified[0].vals[0] = 44

	assert.Equal(t, []int{1, 2}, l.Snapshot()[0].vals)
}

func TestFind(t *testing.T) {
	l := NewList[int]()
	l.Append(3)
	l.Append(8)

	v, ok := l.Find(func(n int) bool { return n > 5 })
	assert.True(t, ok)
	assert.Equal(t, 8, v)

	_, ok = l.Find(func(n int) bool { return n > 50 })
	assert.False(t, ok)
}

func TestConcurrentWritersAndReaders(t *testing.T) {
	l := NewList[int]()

	var mu sync.Mutex
	lengths := make([]int, 0, 100)
	l.Subscribe(func(s []int) {
		mu.Lock()
		lengths = append(lengths, len(s))
		mu.Unlock()
	})

	var g errgroup.Group
	for i := 0; i < 100; i++ {
		g.Go(func() error {
			l.Append(i)
			_ = l.Snapshot()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Len(t, l.Snapshot(), 100)
	for i, n := range lengths {
		assert.Equal(t, i+1, n)
	}
}
