package callback

import (
	"sync"
)

// MultiUse is a callback slot that may fire many times, such as a state or
// event notification. It is owned by the object the callback is registered
// on and must be closed together with that object.
type MultiUse struct {
	reg   *Registry
	mu    sync.Mutex
	token Token
}

func NewMultiUse(reg *Registry) *MultiUse {
	if reg == nil {
		reg = Default
	}

	return &MultiUse{
		reg: reg,
	}
}

// Set replaces the stored closure. The previous box is released before the
// new one is installed. A nil value just clears the slot and returns 0.
func (self *MultiUse) Set(value any) Token {
	self.mu.Lock()
	defer self.mu.Unlock()

	if self.token != 0 {
		self.reg.Release(self.token)
		self.token = 0
	}

	if value != nil {
		self.token = self.reg.Put(value)
	}

	return self.token
}

// Token returns the token of the current closure, or 0 if the slot is empty.
func (self *MultiUse) Token() Token {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.token
}

// Close releases the current closure, if any.
func (self *MultiUse) Close() {
	self.Set(nil)
}

// Scope tracks the single-shot closures handed out on behalf of one owner
// (normally a context). Each closure is released exactly once: when it fires,
// when its operation is cancelled, or when the scope is closed.
type Scope struct {
	reg     *Registry
	mu      sync.Mutex
	pending map[Token]struct{}
	closed  bool
}

func NewScope(reg *Registry) *Scope {
	if reg == nil {
		reg = Default
	}

	return &Scope{
		reg:     reg,
		pending: make(map[Token]struct{}),
	}
}

// Once boxes a single-shot closure owned by this scope. A closed scope
// accepts nothing and returns 0.
func (self *Scope) Once(value any) Token {
	self.mu.Lock()
	defer self.mu.Unlock()

	if self.closed || value == nil {
		return 0
	}

	t := self.reg.put(value, self)
	self.pending[t] = struct{}{}

	return t
}

// Cancel releases a closure that will never fire. It reports whether the
// closure was still pending.
func (self *Scope) Cancel(t Token) bool {
	return self.reg.Release(t)
}

// Pending returns how many closures of this scope have neither fired nor
// been cancelled.
func (self *Scope) Pending() int {
	self.mu.Lock()
	defer self.mu.Unlock()
	return len(self.pending)
}

// Close releases every closure still pending and returns how many there were.
func (self *Scope) Close() int {
	self.mu.Lock()
	tokens := make([]Token, 0, len(self.pending))

	for t := range self.pending {
		tokens = append(tokens, t)
	}

	self.closed = true
	self.mu.Unlock()

	released := 0

	for _, t := range tokens {
		if self.reg.Release(t) {
			released++
		}
	}

	return released
}

func (self *Scope) forget(t Token) {
	self.mu.Lock()
	delete(self.pending, t)
	self.mu.Unlock()
}
