// Package migrations contains all database migration files. Each file
// registers itself through an init() call; cmd/rby imports this package so
// every migration is known at CLI startup.
package migrations
