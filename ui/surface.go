package ui

import "sync"

// Surface is a visible screen that can show a transient message.
type Surface interface {
	ShowToast(msg string)
}

// Locator finds the surface currently in the foreground.
type Locator interface {
	// CurrentSurface returns nil when nothing is visible.
	CurrentSurface() Surface
}

// LocatorFunc adapts a function to a Locator.
type LocatorFunc func() Surface

// CurrentSurface calls f.
func (f LocatorFunc) CurrentSurface() Surface {
	return f()
}

// Stack tracks visible surfaces in the order they were shown. The most
// recently pushed surface is current. Surfaces are compared with ==, so
// their dynamic types must be comparable. The zero value is ready to use.
type Stack struct {
	mu       sync.Mutex
	surfaces []Surface
}

// Push makes s the current surface. Nil surfaces are ignored.
func (st *Stack) Push(s Surface) {
	if s == nil {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.surfaces = append(st.surfaces, s)
}

// Remove drops the topmost occurrence of s and reports whether it was found.
func (st *Stack) Remove(s Surface) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := len(st.surfaces) - 1; i >= 0; i-- {
		if st.surfaces[i] == s {
			st.surfaces = append(st.surfaces[:i], st.surfaces[i+1:]...)
			return true
		}
	}
	return false
}

// CurrentSurface returns the top of the stack, or nil when it is empty.
func (st *Stack) CurrentSurface() Surface {
	st.mu.Lock()
	defer st.mu.Unlock()
	if len(st.surfaces) == 0 {
		return nil
	}
	return st.surfaces[len(st.surfaces)-1]
}

// Len returns the number of visible surfaces.
func (st *Stack) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.surfaces)
}
