// Package schedule turns the rows of a broadcast schedule table into race
// weekends and picks the next one that has not happened yet.
//
// The table lists a header row per venue (blank first cell, city in the
// second) followed by one row per televised session. Build groups those rows
// into a Schedule, and SelectNext drops the weekends that are over relative
// to a reference day and renders a relative label for the next one.
package schedule
