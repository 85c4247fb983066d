// Package domain contains the core types of the GymBuddy client:
// onboarding profiles, chat messages and view state. It has no
// dependencies on the UI surface or the network layer.
package domain
