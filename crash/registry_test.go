package crash

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Default(t *testing.T) {
	reg := NewRegistry()
	require.Nil(t, reg.Default())
	require.False(t, reg.Dispatch(reg.NewThread("main"), "boom"))

	first := &recorder{}
	require.Nil(t, reg.SetDefault(first))
	require.Same(t, first, reg.Default())

	second := HandlerFunc(func(*Thread, any) {})
	require.Same(t, first, reg.SetDefault(second))
}

func TestRegistry_NewThread(t *testing.T) {
	reg := NewRegistry()
	a := reg.NewThread("a")
	b := reg.NewThread("b")

	require.Equal(t, int64(1), a.ID)
	require.Equal(t, int64(2), b.ID)
	require.Equal(t, "b#2", b.String())

	var none *Thread
	require.Equal(t, "<nil>", none.String())
}

func TestRegistry_GoDispatchesPanics(t *testing.T) {
	rec := &recorder{}
	reg := NewRegistry(WithDefault(rec))
	cause := stderrors.New("nil map write")

	thread := reg.Go("writer", func() {
		panic(cause)
	})

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	got := rec.snapshot()[0]
	require.Same(t, thread, got.thread)

	p, ok := got.failure.(*Panic)
	require.True(t, ok)
	require.Equal(t, cause, p.Value)
	require.ErrorIs(t, p, cause)
	require.Equal(t, "panic: nil map write", p.Error())
	require.NotEmpty(t, p.StackTrace())
}

func TestRegistry_GoWithoutPanic(t *testing.T) {
	rec := &recorder{}
	reg := NewRegistry(WithDefault(rec))
	done := make(chan struct{})

	reg.Go("ok", func() { close(done) })
	<-done
	time.Sleep(10 * time.Millisecond)

	require.Empty(t, rec.snapshot())
}

func TestRegistry_Guard(t *testing.T) {
	rec := &recorder{}
	reg := NewRegistry(WithDefault(rec))
	thread := reg.NewThread("main")

	func() {
		defer reg.Guard(thread)
		panic("main failed")
	}()

	calls := rec.snapshot()
	require.Len(t, calls, 1)
	p := calls[0].failure.(*Panic)
	require.Equal(t, "main failed", p.Value)
	require.Nil(t, p.Unwrap())
}

func TestRegistry_GuardWithoutHandler(t *testing.T) {
	reg := NewRegistry()

	require.PanicsWithValue(t, "lost", func() {
		defer reg.Guard(reg.NewThread("main"))
		panic("lost")
	})
}

func TestHandlerFunc(t *testing.T) {
	var got any
	var h Handler = HandlerFunc(func(_ *Thread, failure any) { got = failure })
	h.Uncaught(nil, 42)
	require.Equal(t, 42, got)
}

func TestIsNil(t *testing.T) {
	var p *Panic
	var e error = p
	var m map[string]int

	require.True(t, isNil(nil))
	require.True(t, isNil(p))
	require.True(t, isNil(e))
	require.True(t, isNil(m))
	require.False(t, isNil(0))
	require.False(t, isNil(""))
	require.False(t, isNil(&Panic{}))
}
