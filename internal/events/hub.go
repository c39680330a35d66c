// Package events fans store changes out to subscribers.
package events

import "sort"

// Hub holds change listeners for a value of type T.
type Hub[T any] struct {
	next      int
	listeners map[int]func(T)
}

// Subscribe registers fn and returns a function that removes it.
func (h *Hub[T]) Subscribe(fn func(T)) func() {
	if h.listeners == nil {
		h.listeners = make(map[int]func(T))
	}
	id := h.next
	h.next++
	h.listeners[id] = fn
	return func() { delete(h.listeners, id) }
}

// Publish calls every listener in subscription order.
func (h *Hub[T]) Publish(v T) {
	ids := make([]int, 0, len(h.listeners))
	for id := range h.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := h.listeners[id]; ok {
			fn(v)
		}
	}
}

// Len returns the number of active listeners.
func (h *Hub[T]) Len() int {
	return len(h.listeners)
}
