// Package controller wires the page together: it configures the
// onboarding widgets, routes between the onboarding and chat views, and
// mediates the start and send flows through the coach API. All DOM-ish
// coupling is isolated behind a Bindings value resolved once at
// construction, so the same orchestration runs under a terminal front
// end or a test harness emitting synthetic events.
package controller
