// Package mocks provides hand-written test doubles for the interfaces at the
// application's boundaries. Each mock exposes an optional function field
// per method plus call tracking, so tests can script behavior inline.
package mocks
