// Package view implements the two presentation pieces of the client:
// the onboarding/chat view router and the chat transcript renderer.
package view
