package crash

import (
	"fmt"
	"reflect"

	"github.com/midian/base/errors"
	pkgerrors "github.com/pkg/errors"
)

// Thread identifies the goroutine a failure happened on.
type Thread struct {
	ID   int64
	Name string
}

// String returns "name#id".
func (t *Thread) String() string {
	if t == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s#%d", t.Name, t.ID)
}

// Handler receives uncaught failures. The failure is usually an error, such
// as a *Panic, but may be any value.
type Handler interface {
	Uncaught(t *Thread, failure any)
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(t *Thread, failure any)

// Uncaught calls f.
func (f HandlerFunc) Uncaught(t *Thread, failure any) {
	f(t, failure)
}

// Panic is a recovered panic.
type Panic struct {
	// Value is the value passed to panic.
	Value any

	// Stack is the goroutine stack at the point of recovery.
	Stack pkgerrors.StackTrace
}

// Error implements the error interface.
func (p *Panic) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// Unwrap returns Value when it is an error.
func (p *Panic) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}

// StackTrace returns the recovery stack.
func (p *Panic) StackTrace() pkgerrors.StackTrace {
	return p.Stack
}

// isNil reports whether failure is nil, including typed nil pointers stored
// in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// message returns the text of the failure.
func message(failure any) string {
	switch f := failure.(type) {
	case *Panic:
		return fmt.Sprint(f.Value)
	case error:
		return f.Error()
	default:
		return fmt.Sprint(f)
	}
}

// frames returns the failure's stack, one "function (file:line)" per frame.
func frames(failure any) []string {
	if err, ok := failure.(error); ok {
		return errors.Frames(err)
	}
	return nil
}
