// Package sqlite opens SQLite databases through whichever driver the build
// selected: pure Go (modernc.org/sqlite) by default, or CGO
// (mattn/go-sqlite3) with the cgo_sqlite tag.
//
// Build modes:
//   - Default (CGO_ENABLED=0): Uses pure Go modernc.org/sqlite
//   - CGO mode (CGO_ENABLED=1 -tags cgo_sqlite): Uses mattn/go-sqlite3 via contrib/sqlite-external
//
// Use Open() instead of sql.Open() so the driver name and connection
// pragmas match the build.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// Memory is the data source name of a private in-memory database.
const Memory = ":memory:"

// pragmas run on every database returned by Open.
var pragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
}

// DriverName returns the SQL driver name to use.
func DriverName() string {
	return driverName
}

// DriverType returns a string identifying the underlying implementation.
// Returns "cgo" for mattn/go-sqlite3, "purego" for modernc.org/sqlite.
func DriverType() string {
	return driverType
}

// IsCGO returns true if the CGO implementation is being used.
func IsCGO() bool {
	return driverType == "cgo"
}

// Open opens a SQLite database using the appropriate driver, pinned to a
// single connection with foreign keys enforced.
func Open(dataSourceName string) (*sql.DB, error) {
	return OpenContext(context.Background(), dataSourceName)
}

// OpenContext is Open with a context for the initial connection.
func OpenContext(ctx context.Context, dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", dataSourceName, err)
	}
	// One connection: ":memory:" databases are per connection, and pragmas
	// are too.
	db.SetMaxOpenConns(1)
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite: %s: %w", p, err)
		}
	}
	return db, nil
}

// OpenReadOnly opens an existing SQLite database in read-only mode.
func OpenReadOnly(ctx context.Context, path string) (*sql.DB, error) {
	return OpenContext(ctx, "file:"+path+"?mode=ro")
}

// Info contains information about the SQLite driver configuration.
type Info struct {
	DriverName string `json:"driver_name"`
	DriverType string `json:"driver_type"`
	IsCGO      bool   `json:"is_cgo"`
	Package    string `json:"package"`
}

// GetInfo returns information about the current SQLite configuration.
func GetInfo() Info {
	return Info{
		DriverName: driverName,
		DriverType: driverType,
		IsCGO:      IsCGO(),
		Package:    driverPackage,
	}
}

// String renders the driver as "sqlite (purego, modernc.org/sqlite)".
func (i Info) String() string {
	return fmt.Sprintf("%s (%s, %s)", i.DriverName, i.DriverType, i.Package)
}
