// Package timer implements the time-tracking core.
//
// The model is deliberately small: the store holds a flat, ordered stream of
// start/stop events, and everything the user sees is derived from it on
// demand. A day's events always alternate start, stop, start, stop — the
// Start and Stop operations refuse to log a duplicate transition, and the
// store's open-time repair pass closes pairs left open across days.
//
// Pairing events two at a time yields the day's work blocks. A trailing
// unmatched start means the user is currently on the clock; it is closed
// with a synthetic "now" for calculations so open blocks count up to the
// present, but that synthetic stop is never written back.
package timer
