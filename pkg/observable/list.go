// Package observable holds ordered collections that publish immutable
// snapshots and notify subscribers after every change.
//
// Writers are serialized by a mutex. Readers load the current snapshot through
// an atomic pointer and never block, so a reader always sees either the whole
// old collection or the whole new one.
package observable

import (
	"slices"
	"sync"
	"sync/atomic"
)

type subscriber[T any] struct {
	id uint64
	fn func([]T)
}

type List[T any] struct {
	mu   sync.Mutex
	snap atomic.Pointer[[]T]

	// clone deep-copies an element on its way in and out. Nil means
	// elements are plain values.
	clone func(T) T

	subsMu sync.Mutex
	subs   atomic.Pointer[[]subscriber[T]]
	nextID uint64
}

func NewList[T any]() *List[T] {
	l := &List[T]{}
	empty := []T{}
	l.snap.Store(&empty)
	noSubs := []subscriber[T]{}
	l.subs.Store(&noSubs)
	return l
}

// NewListWithClone is NewList for elements that hold references, such as
// slices. clone is applied to every element entering or leaving the list so
// callers never share memory with the published snapshot.
func NewListWithClone[T any](clone func(T) T) *List[T] {
	l := NewList[T]()
	l.clone = clone
	return l
}

func (l *List[T]) copyOut(src []T) []T {
	out := slices.Clone(src)
	if l.clone != nil {
		for i := range out {
			out[i] = l.clone(out[i])
		}
	}
	return out
}

func (l *List[T]) copyIn(v T) T {
	if l.clone != nil {
		return l.clone(v)
	}
	return v
}

// Snapshot returns a copy of the current collection.
func (l *List[T]) Snapshot() []T {
	return l.copyOut(*l.snap.Load())
}

// Find returns a copy of the first element matching pred.
func (l *List[T]) Find(pred func(T) bool) (T, bool) {
	for _, v := range *l.snap.Load() {
		if pred(v) {
			return l.copyIn(v), true
		}
	}
	var zero T
	return zero, false
}

func (l *List[T]) Append(v T) {
	v = l.copyIn(v)
	l.Update(func(cur []T) ([]T, bool) {
		next := make([]T, len(cur), len(cur)+1)
		copy(next, cur)
		return append(next, v), true
	})
}

// Update runs fn against the current snapshot. fn must build a new slice
// rather than modify cur, and must copy any element it takes from the caller.
// When fn reports a change, the returned slice becomes the published snapshot
// and subscribers are notified in subscription order before Update returns.
//
// Subscribers run while the writer lock is held so notifications never
// interleave. They must not call Update; subscribing or cancelling from inside
// a subscriber is fine.
func (l *List[T]) Update(fn func(cur []T) ([]T, bool)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	next, changed := fn(*l.snap.Load())
	if !changed {
		return false
	}
	if next == nil {
		next = []T{}
	}
	l.snap.Store(&next)

	for _, s := range *l.subs.Load() {
		s.fn(l.copyOut(next))
	}
	return true
}

// Subscribe registers fn for change notifications. The returned func removes
// the subscription and is safe to call more than once.
func (l *List[T]) Subscribe(fn func([]T)) (cancel func()) {
	l.subsMu.Lock()
	l.nextID++
	id := l.nextID
	cur := *l.subs.Load()
	next := make([]subscriber[T], len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, subscriber[T]{id: id, fn: fn})
	l.subs.Store(&next)
	l.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { l.unsubscribe(id) })
	}
}

func (l *List[T]) unsubscribe(id uint64) {
	l.subsMu.Lock()
	defer l.subsMu.Unlock()

	cur := *l.subs.Load()
	next := make([]subscriber[T], 0, len(cur))
	for _, s := range cur {
		if s.id != id {
			next = append(next, s)
		}
	}
	l.subs.Store(&next)
}
