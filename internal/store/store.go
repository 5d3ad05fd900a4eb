// Package store is a small state container with listener subscriptions.
//
// State changes are applied with Dispatch and pushed synchronously to every
// subscriber. Select and CombineLatest derive listeners from one or two
// stores; Subscriptions collects handles so a view can release them all when
// it goes away.
package store

import "sync"

// Store holds the latest value of S.
type Store[S any] struct {
	mu        sync.Mutex
	state     S
	nextID    int
	listeners map[int]func(S)
	order     []int
}

// New returns a store holding initial.
func New[S any](initial S) *Store[S] {
	return &Store[S]{state: initial, listeners: map[int]func(S){}}
}

// State returns the current state.
func (s *Store[S]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch replaces the state with reduce(state) and notifies listeners in
// subscription order. Listeners run outside the lock and may dispatch.
func (s *Store[S]) Dispatch(reduce func(S) S) {
	s.mu.Lock()
	s.state = reduce(s.state)
	st := s.state
	fns := s.snapshot()
	s.mu.Unlock()
	for _, fn := range fns {
		fn(st)
	}
}

func (s *Store[S]) snapshot() []func(S) {
	fns := make([]func(S), 0, len(s.order))
	for _, id := range s.order {
		if fn, ok := s.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	return fns
}

// Subscribe registers fn and calls it immediately with the current state.
func (s *Store[S]) Subscribe(fn func(S)) *Subscription {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.order = append(s.order, id)
	st := s.state
	s.mu.Unlock()

	fn(st)
	return &Subscription{close: func() { s.unsubscribe(id) }}
}

func (s *Store[S]) unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
	for i, x := range s.order {
		if x == id {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
}

// Subscription is a handle on a registered listener.
type Subscription struct {
	once  sync.Once
	close func()
}

// Close removes the listener. It is safe to call more than once.
func (sub *Subscription) Close() {
	if sub == nil {
		return
	}
	sub.once.Do(func() {
		if sub.close != nil {
			sub.close()
		}
	})
}

// Select subscribes fn to a projection of the store's state. fn only runs
// when the projected value differs from the previous one according to
// equal.
func Select[S, T any](s *Store[S], selector func(S) T, equal func(a, b T) bool, fn func(T)) *Subscription {
	var (
		mu   sync.Mutex
		seen bool
		last T
	)
	return s.Subscribe(func(st S) {
		v := selector(st)
		mu.Lock()
		if seen && equal(last, v) {
			mu.Unlock()
			return
		}
		seen, last = true, v
		mu.Unlock()
		fn(v)
	})
}

// CombineLatest calls fn with merge(a, b) on every change of either store,
// using the latest value of the other. Since subscribing delivers the
// current state, fn runs once straight away.
func CombineLatest[A, B, R any](a *Store[A], b *Store[B], merge func(A, B) R, fn func(R)) *Subscription {
	var (
		mu         sync.Mutex
		hasA, hasB bool
		va         A
		vb         B
	)
	emit := func() {
		mu.Lock()
		if !hasA || !hasB {
			mu.Unlock()
			return
		}
		x, y := va, vb
		mu.Unlock()
		fn(merge(x, y))
	}
	var subs Subscriptions
	subs.Add(a.Subscribe(func(v A) {
		mu.Lock()
		va, hasA = v, true
		mu.Unlock()
		emit()
	}))
	subs.Add(b.Subscribe(func(v B) {
		mu.Lock()
		vb, hasB = v, true
		mu.Unlock()
		emit()
	}))
	return &Subscription{close: subs.Close}
}

// Subscriptions is a bag of handles released together.
type Subscriptions struct {
	mu   sync.Mutex
	subs []*Subscription
}

// Add keeps sub until Close.
func (b *Subscriptions) Add(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, sub)
}

// Close releases every handle added so far.
func (b *Subscriptions) Close() {
	b.mu.Lock()
	subs := b.subs
	b.subs = nil
	b.mu.Unlock()
	for _, s := range subs {
		s.Close()
	}
}
