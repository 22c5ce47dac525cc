// Package service contains the application services that orchestrate
// domain entities and stores.
package service
