// Package session implements the formatting session: one narrative unit
// loaded from a host document into a buffer, edited with strong/emphasis
// toggles, counted, and written back only through the host's confirmed-write
// path.
//
// A Session is single-threaded. Several sessions may be open at once, one
// per unit; they share only the Host and the injected Prefs.
package session
