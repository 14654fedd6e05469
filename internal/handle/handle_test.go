package handle

import (
	"errors"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type object struct {
	id int
}

func TestFromOwnedNil(t *testing.T) {
	assert := require.New(t)
	released := 0

	h, err := FromOwned[object](`object`, nil, func(*object) { released++ })
	assert.Nil(h)
	assert.ErrorIs(err, ErrNullHandle)
	assert.Zero(released)

	_, err = FromWeak[object](nil)
	assert.ErrorIs(err, ErrNullHandle)
}

func TestOwnedReleasesOnce(t *testing.T) {
	assert := require.New(t)
	obj := &object{id: 4}
	var released []*object

	h, err := FromOwned(`object`, obj, func(o *object) { released = append(released, o) })
	assert.NoError(err)

	ptr, err := h.Get()
	assert.NoError(err)
	assert.Equal(obj, ptr)
	assert.False(h.Released())

	assert.NoError(h.Close())
	assert.NoError(h.Close())
	assert.NoError(h.Close())

	assert.Len(released, 1)
	assert.Equal(obj, released[0])
	assert.True(h.Released())

	_, err = h.Get()
	assert.ErrorIs(err, ErrAlreadyReleased)
	assert.Nil(h.Ptr())
	assert.True(h.Weak().IsNil())
}

func useAndFail(release func(*object)) (err error) {
	h, err := FromOwned(`object`, &object{}, release)
	if err != nil {
		return err
	}

	defer h.Close()

	return errors.New(`early exit`)
}

func useAndPanic(release func(*object)) {
	h, _ := FromOwned(`object`, &object{}, release)
	defer h.Close()

	panic(`boom`)
}

func TestOwnedReleasedOnEveryExitPath(t *testing.T) {
	assert := require.New(t)
	count := 0
	release := func(*object) { count++ }

	assert.Error(useAndFail(release))
	assert.Equal(1, count)

	assert.Panics(func() { useAndPanic(release) })
	assert.Equal(2, count)
}

func TestWeakView(t *testing.T) {
	assert := require.New(t)
	obj := &object{id: 9}
	count := 0

	h, err := FromOwned(`object`, obj, func(*object) { count++ })
	assert.NoError(err)

	weak := h.Weak()
	assert.False(weak.IsNil())
	assert.Equal(9, weak.Get().id)

	w2, err := FromWeak(obj)
	assert.NoError(err)
	assert.Equal(obj, w2.Get())

	// dropping weak views never releases anything
	weak = Weak[object]{}
	w2 = Weak[object]{}
	assert.Zero(count)

	h.Close()
	assert.Equal(1, count)
}

func leakOne(release func(*object)) {
	h, _ := FromOwned(`leaky`, &object{}, release)
	_ = h
}

func TestLeakedHandleIsReportedNotReleased(t *testing.T) {
	assert := require.New(t)
	leaks := make(chan string, 1)
	var mu sync.Mutex
	released := 0

	previous := SetLeakHandler(func(name string) {
		if name != `leaky` {
			return
		}

		select {
		case leaks <- name:
		default:
		}
	})
	defer SetLeakHandler(previous)

	leakOne(func(*object) {
		mu.Lock()
		released++
		mu.Unlock()
	})

	deadline := time.After(5 * time.Second)

	for {
		runtime.GC()

		select {
		case name := <-leaks:
			assert.Equal(`leaky`, name)

			mu.Lock()
			defer mu.Unlock()
			assert.Zero(released)
			return
		case <-deadline:
			t.Fatal(`finalizer never reported the leaked handle`)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestStringConcurrentWithClose(t *testing.T) {
	assert := require.New(t)
	h, err := FromOwned(`object`, &object{}, nil)
	assert.NoError(err)

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for i := 0; i < 100; i++ {
			_ = h.String()
		}
	}()

	h.Close()
	wg.Wait()

	assert.True(strings.HasPrefix(h.String(), `object(owned`))
}
