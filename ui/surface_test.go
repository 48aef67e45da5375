package ui

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type screen struct {
	name string
	mu   *sync.Mutex
	msgs *[]string
}

func newScreen(name string) *screen {
	return &screen{name: name, mu: &sync.Mutex{}, msgs: &[]string{}}
}

func (s *screen) ShowToast(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.msgs = append(*s.msgs, msg)
}

func TestStack(t *testing.T) {
	var st Stack
	require.Nil(t, st.CurrentSurface())

	home, detail := newScreen("home"), newScreen("detail")
	st.Push(home)
	st.Push(detail)
	st.Push(nil)
	require.Equal(t, 2, st.Len())
	require.Same(t, detail, st.CurrentSurface())

	require.True(t, st.Remove(detail))
	require.Same(t, home, st.CurrentSurface())

	require.False(t, st.Remove(detail))
	require.True(t, st.Remove(home))
	require.Nil(t, st.CurrentSurface())
}

func TestStack_RemoveTopmostOccurrence(t *testing.T) {
	var st Stack
	a, b := newScreen("a"), newScreen("b")
	st.Push(a)
	st.Push(b)
	st.Push(a)

	require.True(t, st.Remove(a))
	require.Same(t, b, st.CurrentSurface())
	require.Equal(t, 2, st.Len())
}

func TestStack_Concurrent(t *testing.T) {
	var st Stack
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := newScreen("s")
			st.Push(s)
			_ = st.CurrentSurface()
			st.Remove(s)
		}()
	}
	wg.Wait()
	require.Equal(t, 0, st.Len())
}

func TestLocatorFunc(t *testing.T) {
	s := newScreen("only")
	var loc Locator = LocatorFunc(func() Surface { return s })
	require.Same(t, s, loc.CurrentSurface())

	loc = LocatorFunc(func() Surface { return nil })
	require.Nil(t, loc.CurrentSurface())
}
