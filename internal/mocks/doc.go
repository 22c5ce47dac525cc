// Package mocks provides hand-written mock implementations of the store
// and auth interfaces for use in tests.
package mocks
