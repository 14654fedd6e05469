package callback

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/ghetzel/go-stockutil/log"
)

var ErrCallbackPanic = errors.New("callback panicked")

// OnPanic, when set, is called with every panic recovered by Guard.
var OnPanic func(err *PanicError)

type PanicError struct {
	Callback string
	Value    any
	Stack    []byte
}

func (self *PanicError) Error() string {
	return fmt.Sprintf("%s callback panicked: %v", self.Callback, self.Value)
}

func (self *PanicError) Unwrap() error {
	return ErrCallbackPanic
}

// Guard runs fn, containing any panic it raises. Panics must never unwind
// into native frames, so every trampoline calls the user's closure through
// Guard.
func Guard(name string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			perr := &PanicError{
				Callback: name,
				Value:    r,
				Stack:    debug.Stack(),
			}

			log.Errorf("%v\n%s", perr, perr.Stack)

			if OnPanic != nil {
				OnPanic(perr)
			}

			err = perr
		}
	}()

	fn()
	return nil
}
