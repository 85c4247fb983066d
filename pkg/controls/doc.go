// Package controls implements the two interactive widgets of the
// onboarding form: single-select chip groups and numeric steppers.
package controls
