// Package store defines the persistence interfaces for the application's
// entities, plus the shared database abstractions (DBTX, transactions) and
// the sentinel errors implementations must return. Concrete implementations
// live in internal/platform/postgres.
package store
