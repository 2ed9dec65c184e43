// Package mocks provides hand-written test doubles for the interfaces used
// across the application. Each mock supports per-call overrides through Fn
// fields, default responses, and call tracking for verification.
package mocks
