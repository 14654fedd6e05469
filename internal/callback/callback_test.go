package callback

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryTakeOnce(t *testing.T) {
	assert := require.New(t)
	reg := NewRegistry()

	tok := reg.Put(func() int { return 1 })
	assert.NotZero(tok)
	assert.Equal(1, reg.Len())

	fn, ok := LookupAs[func() int](reg, tok)
	assert.True(ok)
	assert.Equal(1, fn())
	assert.Equal(1, reg.Len())

	fn, ok = TakeAs[func() int](reg, tok)
	assert.True(ok)
	assert.Equal(1, fn())
	assert.Zero(reg.Len())

	_, ok = reg.Take(tok)
	assert.False(ok)

	_, ok = reg.Lookup(0)
	assert.False(ok)
}

func TestMultiUseReplaceReleasesPrevious(t *testing.T) {
	assert := require.New(t)
	reg := NewRegistry()
	slot := NewMultiUse(reg)
	var fired []string

	a := slot.Set(func() { fired = append(fired, `a`) })
	assert.Equal(1, reg.Len())

	b := slot.Set(func() { fired = append(fired, `b`) })
	assert.NotEqual(a, b)
	assert.Equal(1, reg.Len())
	assert.Equal(b, slot.Token())

	_, ok := reg.Lookup(a)
	assert.False(ok)

	// a multi-use closure may fire any number of times
	for i := 0; i < 3; i++ {
		fn, ok := LookupAs[func()](reg, slot.Token())
		assert.True(ok)
		fn()
	}

	assert.Equal([]string{`b`, `b`, `b`}, fired)

	slot.Close()
	assert.Zero(reg.Len())
	assert.Zero(slot.Token())

	assert.Zero(slot.Set(nil))
}

func TestScopeExactlyOnce(t *testing.T) {
	assert := require.New(t)
	reg := NewRegistry()
	scope := NewScope(reg)

	fired := scope.Once(func(ok bool) {})
	cancelled := scope.Once(func(ok bool) {})
	leftover := scope.Once(func(ok bool) {})
	assert.Equal(3, scope.Pending())

	// firing consumes the box
	fn, ok := TakeAs[func(bool)](reg, fired)
	assert.True(ok)
	fn(true)
	assert.Equal(2, scope.Pending())

	// cancel releases, and a late completion finds nothing
	assert.True(scope.Cancel(cancelled))
	assert.False(scope.Cancel(cancelled))
	_, ok = reg.Take(cancelled)
	assert.False(ok)
	assert.Equal(1, scope.Pending())

	// teardown releases whatever never completed
	assert.Equal(1, scope.Close())
	_, ok = reg.Take(leftover)
	assert.False(ok)
	assert.Zero(reg.Len())

	assert.Zero(scope.Close())
	assert.Zero(scope.Once(func(bool) {}))
	assert.Zero(reg.Len())
}

func TestCancelDoesNotAffectOthers(t *testing.T) {
	assert := require.New(t)
	reg := NewRegistry()
	scope := NewScope(reg)

	first := scope.Once(func() {})
	assert.True(scope.Cancel(first))

	second := scope.Once(func() {})
	fn, ok := TakeAs[func()](reg, second)
	assert.True(ok)
	assert.NotPanics(fn)
}

func TestListDispatch(t *testing.T) {
	assert := require.New(t)
	reg := NewRegistry()
	scope := NewScope(reg)
	var items []int
	var end int

	tok := scope.Once(func(item int, eol int) {
		if eol == 0 {
			items = append(items, item)
		} else {
			end = eol
		}
	})

	for i := 1; i <= 3; i++ {
		fn, ok := ListAs[func(int, int)](reg, tok, 0)
		assert.True(ok)
		fn(i, 0)
	}

	assert.Equal(1, scope.Pending())

	fn, ok := ListAs[func(int, int)](reg, tok, 1)
	assert.True(ok)
	fn(0, 1)

	assert.Equal([]int{1, 2, 3}, items)
	assert.Equal(1, end)
	assert.Zero(scope.Pending())

	_, ok = reg.List(tok, 0)
	assert.False(ok)

	errTok := scope.Once(func(int, int) {})
	_, ok = reg.List(errTok, -1)
	assert.True(ok)
	assert.Zero(reg.Len())
}

func TestGuardContainsPanic(t *testing.T) {
	assert := require.New(t)
	var hooked *PanicError

	OnPanic = func(err *PanicError) { hooked = err }
	defer func() { OnPanic = nil }()

	err := Guard(`state`, func() { panic(`boom`) })
	assert.Error(err)
	assert.True(errors.Is(err, ErrCallbackPanic))

	var perr *PanicError
	assert.True(errors.As(err, &perr))
	assert.Equal(`state`, perr.Callback)
	assert.Equal(`boom`, perr.Value)
	assert.NotEmpty(perr.Stack)
	assert.Equal(perr, hooked)

	// dispatch carries on after a contained panic
	ran := false
	assert.NoError(Guard(`state`, func() { ran = true }))
	assert.True(ran)
}

func TestWrongTypeIsNotDispatched(t *testing.T) {
	assert := require.New(t)
	reg := NewRegistry()

	tok := reg.Put(func(int) {})
	_, ok := TakeAs[func(string)](reg, tok)
	assert.False(ok)
	assert.Zero(reg.Len())
}
