// Package mocks provides centralized mock implementations for testing.
//
// Each mock implements one of the application's interfaces with two layers
// of behavior: per-method function fields for tests that need precise
// control, and a map-backed default implementation for tests that only
// need a working fake. Keeping them here avoids redefining inline mocks
// in every test package.
package mocks
