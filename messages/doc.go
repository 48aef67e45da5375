// Package messages turns classified errors into user facing text.
//
// Each errors.Kind maps to one lookup Key. A Table holds the templates of a
// single language; a Catalog holds tables for several languages and picks the
// best one for a locale. Templates for code bearing kinds contain a single
// verb that receives the error code:
//
//	lang: en
//	messages:
//	  http-status-code-error: "Network error, status code: %d"
//	  network-not-connected: "Network unavailable, please check your connection"
//
// Render never fails. A nil error, an unknown kind or a missing template all
// render as the empty string.
package messages
