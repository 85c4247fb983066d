// Package ui is the abstract interface surface the controller operates
// on: a small element tree with ids, marker classes, attributes, values
// and visibility, plus synthetic event dispatch. It stands in for a
// browser document so the same orchestration logic can be driven by a
// terminal front end or by a test harness emitting events.
//
// The tree is single-writer: all mutation happens on the event loop
// that dispatches events. No internal locking is performed.
package ui
