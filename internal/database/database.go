package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/sbilibin2017/gw-text2sql/internal/logger"
)

// Supported target database drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const busyTimeoutMillis = 5000

// OpenSQLite opens a SQLite database. Connection pragmas travel in the DSN
// so the driver applies them to every pooled connection.
func OpenSQLite(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, DriverSQLite, SQLiteDSN(dsn))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	return db, nil
}

// SQLiteDSN adds busy_timeout and, for file databases, WAL journaling to dsn
// unless the caller already set them.
func SQLiteDSN(dsn string) string {
	var params []string
	if !strings.Contains(dsn, "_timeout=") {
		params = append(params, fmt.Sprintf("_busy_timeout=%d", busyTimeoutMillis))
	}
	if !isMemoryDSN(dsn) && !strings.Contains(dsn, "_journal_mode=") && !strings.Contains(dsn, "_journal=") {
		params = append(params, "_journal_mode=WAL")
	}
	if len(params) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

func isMemoryDSN(dsn string) bool {
	return strings.HasPrefix(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// OpenUsers opens the credentials database and migrates it to the latest version.
func OpenUsers(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := OpenSQLite(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := Migrate(dsn); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// OpenTarget opens the database that generated queries run against.
func OpenTarget(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	switch driver {
	case DriverSQLite:
		return OpenSQLite(ctx, dsn)
	case DriverPostgres:
		db, err := sqlx.ConnectContext(ctx, DriverPostgres, dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported target driver %q", driver)
	}
}

// Migrate applies the embedded users migrations. It uses its own connection
// because closing the migrator closes the underlying database handle.
func Migrate(dsn string) error {
	conn, err := sql.Open(DriverSQLite, SQLiteDSN(dsn))
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}

	driver, err := migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, DriverSQLite, driver)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	logger.Log.Infow("users database migrated", "version", version, "dirty", dirty)
	return nil
}
