// Package irq provides the interrupt-safe mutual exclusion used around every
// piece of shared state in the core.
//
// The only concurrency sources are asynchronous event deliveries (the timer
// and the keyboard). A critical section must not be re-entered by a second
// delivery while the first is inside it, so Lock both masks delivery and
// takes a mutex for the duration of the section.
package irq

import (
	"sync"
	"sync/atomic"
)

// depth counts nested masked sections across the process.
var depth atomic.Int32

// Masked reports whether any critical section currently has delivery masked.
func Masked() bool {
	return depth.Load() > 0
}

// Depth returns the current nesting depth of masked sections.
func Depth() int32 {
	return depth.Load()
}

// Without runs fn with delivery masked, without taking any lock.
func Without(fn func()) {
	depth.Add(1)
	defer depth.Add(-1)
	fn()
}

// Lock is a mutex whose critical sections also mask event delivery.
// The zero value is unlocked.
type Lock struct {
	mu sync.Mutex
}

// Lock masks delivery and acquires the mutex.
func (l *Lock) Lock() {
	depth.Add(1)
	l.mu.Lock()
}

// Unlock releases the mutex and unmasks delivery.
func (l *Lock) Unlock() {
	l.mu.Unlock()
	depth.Add(-1)
}

// Do runs fn as a single critical section.
func (l *Lock) Do(fn func()) {
	l.Lock()
	defer l.Unlock()
	fn()
}
