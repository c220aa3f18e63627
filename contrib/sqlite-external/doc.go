// Package sqliteexternal provides the optional CGO SQLite driver.
//
// # CGO SQLite Driver
//
// core/sqlite imports this package when built with the cgo_sqlite tag:
//
//	CGO_ENABLED=1 go build -tags cgo_sqlite ./cmd/versecards
//
// # Default Pure Go Driver
//
// Without the tag VerseCards uses modernc.org/sqlite, which needs no C
// toolchain. Flashcard databases are small, so the pure Go driver is the
// right default; the CGO driver is for hosts that already link libsqlite3.
package sqliteexternal
