// Package store defines the persistence interfaces and errors used by the
// service and API layers. Concrete implementations live under
// internal/platform.
package store
