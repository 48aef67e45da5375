// Package ui models the UI collaborators the crash reporter needs: a surface
// that can show a short message, a locator for the surface currently in the
// foreground, and a looper that runs UI tasks on a dedicated goroutine.
package ui
