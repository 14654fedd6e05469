// Package callback bridges Go closures across the cgo boundary. Closures are
// boxed in a registry and referred to from native code by an opaque Token,
// so no Go pointer is ever handed to C.
package callback

import (
	"sync"
)

// Token is the opaque value native code carries as its userdata pointer.
// The zero Token means "no callback".
type Token uintptr

type entry struct {
	value any
	scope *Scope
}

// Registry holds boxed closures keyed by token.
type Registry struct {
	mu    sync.Mutex
	next  Token
	boxes map[Token]*entry
}

// Default is the registry used by the native trampolines.
var Default = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{
		boxes: make(map[Token]*entry),
	}
}

func (self *Registry) put(value any, scope *Scope) Token {
	self.mu.Lock()
	defer self.mu.Unlock()

	self.next++
	self.boxes[self.next] = &entry{
		value: value,
		scope: scope,
	}

	return self.next
}

// Put boxes value and returns the token that addresses it.
func (self *Registry) Put(value any) Token {
	return self.put(value, nil)
}

// Lookup returns the boxed value by reference. The box stays registered.
func (self *Registry) Lookup(t Token) (any, bool) {
	if t == 0 {
		return nil, false
	}

	self.mu.Lock()
	defer self.mu.Unlock()

	if e, ok := self.boxes[t]; ok {
		return e.value, true
	}

	return nil, false
}

// Take removes the box and returns its value. Only the first Take of a
// token succeeds.
func (self *Registry) Take(t Token) (any, bool) {
	if t == 0 {
		return nil, false
	}

	self.mu.Lock()
	e, ok := self.boxes[t]
	delete(self.boxes, t)
	self.mu.Unlock()

	if !ok {
		return nil, false
	}

	if e.scope != nil {
		e.scope.forget(t)
	}

	return e.value, true
}

// Release drops the box without returning it, reporting whether it was live.
func (self *Registry) Release(t Token) bool {
	_, ok := self.Take(t)
	return ok
}

// List is used by callbacks that fire once per item and then once more to
// signal the end of the list (eol > 0) or a failure (eol < 0). Items borrow
// the box; the terminating call consumes it.
func (self *Registry) List(t Token, eol int) (any, bool) {
	if eol == 0 {
		return self.Lookup(t)
	}

	return self.Take(t)
}

// Len returns the number of live boxes.
func (self *Registry) Len() int {
	self.mu.Lock()
	defer self.mu.Unlock()
	return len(self.boxes)
}

// LookupAs is Lookup with a type assertion.
func LookupAs[F any](reg *Registry, t Token) (F, bool) {
	return as[F](reg.Lookup(t))
}

// TakeAs is Take with a type assertion.
func TakeAs[F any](reg *Registry, t Token) (F, bool) {
	return as[F](reg.Take(t))
}

// ListAs is List with a type assertion.
func ListAs[F any](reg *Registry, t Token, eol int) (F, bool) {
	return as[F](reg.List(t, eol))
}

func as[F any](value any, ok bool) (F, bool) {
	var zero F

	if !ok {
		return zero, false
	}

	fn, ok := value.(F)
	return fn, ok
}
