// Package postgres implements the store interfaces against a PostgreSQL
// database, including the mapping of database error codes onto the store's
// sentinel errors.
package postgres
