// Package handle wraps raw pointers to native library objects, distinguishing
// handles that own (and eventually release) the object from weak views that
// merely observe it.
package handle

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/ghetzel/go-stockutil/log"
)

var ErrNullHandle = errors.New("null native handle")
var ErrAlreadyReleased = errors.New("native handle already released")

var leakMu sync.Mutex
var leakHandler = func(name string) {
	log.Warningf("%s handle was garbage collected without being closed; the native object is leaked", name)
}

// SetLeakHandler replaces the function called from the finalizer of an owned
// handle that was never closed, returning the previous one. The native object
// is not released there: it may belong to a mainloop whose lock the finalizer
// goroutine does not hold.
func SetLeakHandler(fn func(name string)) func(name string) {
	leakMu.Lock()
	defer leakMu.Unlock()

	previous := leakHandler
	leakHandler = fn

	return previous
}

func reportLeak(name string) {
	leakMu.Lock()
	fn := leakHandler
	leakMu.Unlock()

	if fn != nil {
		fn(name)
	}
}

// ReleaseFunc destroys (or drops one reference to) a native object.
type ReleaseFunc[T any] func(*T)

// Owned is the sole party responsible for releasing a native object. The
// release function runs exactly once, on the first call to Close.
type Owned[T any] struct {
	name    string
	ptr     *T
	release ReleaseFunc[T]
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
}

// FromOwned takes ownership of ptr. The returned handle calls release when
// closed. A nil pointer yields ErrNullHandle and no handle is created.
func FromOwned[T any](name string, ptr *T, release ReleaseFunc[T]) (*Owned[T], error) {
	if ptr == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrNullHandle)
	}

	h := &Owned[T]{
		name:    name,
		ptr:     ptr,
		release: release,
	}

	runtime.SetFinalizer(h, func(h *Owned[T]) {
		if !h.Released() {
			reportLeak(h.name)
		}
	})

	return h, nil
}

// Get returns the raw pointer for use in non-destructive native calls.
func (self *Owned[T]) Get() (*T, error) {
	self.mu.RLock()
	defer self.mu.RUnlock()

	if self.closed {
		log.Errorf("%s handle used after release", self.name)
		return nil, fmt.Errorf("%s: %w", self.name, ErrAlreadyReleased)
	}

	return self.ptr, nil
}

// Ptr is like Get, but returns nil instead of an error for a released handle.
func (self *Owned[T]) Ptr() *T {
	ptr, _ := self.Get()
	return ptr
}

// Weak returns a non-owning view of the same object.
func (self *Owned[T]) Weak() Weak[T] {
	self.mu.RLock()
	defer self.mu.RUnlock()

	if self.closed {
		return Weak[T]{}
	}

	return Weak[T]{ptr: self.ptr}
}

// Released reports whether Close has already run.
func (self *Owned[T]) Released() bool {
	self.mu.RLock()
	defer self.mu.RUnlock()
	return self.closed
}

// Close releases the native object. Only the first call has any effect.
func (self *Owned[T]) Close() error {
	self.once.Do(func() {
		self.mu.Lock()
		ptr := self.ptr
		self.closed = true
		self.ptr = nil
		self.mu.Unlock()

		if self.release != nil {
			self.release(ptr)
		}

		runtime.SetFinalizer(self, nil)
	})

	return nil
}

func (self *Owned[T]) String() string {
	self.mu.RLock()
	defer self.mu.RUnlock()
	return fmt.Sprintf("%s(owned %p)", self.name, self.ptr)
}

// Weak observes a native object owned by someone else. It cannot release it;
// its validity depends on the owner staying alive.
type Weak[T any] struct {
	ptr *T
}

// FromWeak wraps ptr without taking ownership.
func FromWeak[T any](ptr *T) (Weak[T], error) {
	if ptr == nil {
		return Weak[T]{}, ErrNullHandle
	}

	return Weak[T]{ptr: ptr}, nil
}

func (self Weak[T]) Get() *T {
	return self.ptr
}

func (self Weak[T]) IsNil() bool {
	return self.ptr == nil
}
