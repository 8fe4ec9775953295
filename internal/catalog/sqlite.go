package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"4d63.com/tz"
	_ "modernc.org/sqlite"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS timezones (
	timezone     TEXT PRIMARY KEY,
	city         TEXT NOT NULL DEFAULT '',
	country      TEXT NOT NULL DEFAULT '',
	country_code TEXT NOT NULL DEFAULT 'UN',
	utc_offset   REAL NOT NULL DEFAULT 0
);
`

// LoadSQLite builds a catalog from the timezones table of a SQLite database.
// The database is opened read-only and must already exist. Rows whose
// timezone does not load are left out and returned in skipped.
func LoadSQLite(ctx context.Context, path string) (c *Catalog, skipped []string, err error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil, fmt.Errorf("open catalog database: %w", err)
	}
	db, err := sql.Open("sqlite", path+"?_pragma=query_only(1)")
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT timezone, city, country, country_code, utc_offset FROM timezones`)
	if err != nil {
		return nil, nil, fmt.Errorf("query timezones: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Timezone, &e.City, &e.Country, &e.CountryCode, &e.UTCOffset); err != nil {
			return nil, nil, fmt.Errorf("scan timezone row: %w", err)
		}
		if _, err := tz.LoadLocation(e.Timezone); e.Timezone == "" || err != nil {
			skipped = append(skipped, e.Timezone)
			continue
		}
		if e.CountryCode == "" {
			e.CountryCode = UnknownCountry
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("read timezones: %w", err)
	}
	if len(entries) == 0 {
		return nil, skipped, fmt.Errorf("catalog database %s has no usable timezones", path)
	}
	c, err = New(entries)
	return c, skipped, err
}

// ExportSQLite writes the catalog into the timezones table at path, creating
// the database if needed. Existing rows with the same timezone are replaced.
func ExportSQLite(ctx context.Context, path string, c *Catalog) error {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("open catalog database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO timezones (timezone, city, country, country_code, utc_offset) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare export: %w", err)
	}
	defer stmt.Close()

	for _, e := range c.entries {
		if _, err := stmt.ExecContext(ctx, e.Timezone, e.City, e.Country, e.CountryCode, e.UTCOffset); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert %s: %w", e.Timezone, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}
