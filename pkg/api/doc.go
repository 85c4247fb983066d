// Package api is the HTTP client for the coach service: profile lookup,
// onboarding submission and chat. Each operation is a single
// request/response round trip with no retry, no timeout and no caching;
// the client performs no local validation and surfaces whatever the
// server returns.
package api
