// Package browserdb reads visit history out of another browser's
// profile database so it can be imported into the waybook history store.
// The profile databases are SQLite files; they are opened read-only and
// never modified.
package browserdb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Flavor identifies a known profile database layout.
type Flavor string

const (
	// FlavorChrome reads Chromium-family History files: visits live in
	// the urls table with WebKit-epoch microsecond timestamps.
	FlavorChrome Flavor = "chrome"

	// FlavorFirefox reads Firefox places.sqlite files: visits live in
	// moz_places with Unix-epoch microsecond timestamps.
	FlavorFirefox Flavor = "firefox"
)

// webkitEpochOffsetSeconds is the gap between the WebKit epoch
// (1601-01-01) and the Unix epoch (1970-01-01).
const webkitEpochOffsetSeconds = 11644473600

// Visit is one page visit read from a profile database.
type Visit struct {
	URL       string
	Title     string
	VisitedAt time.Time
}

// ReadVisits opens the profile database at path and returns its visits,
// newest first as the source databases index them. Visits older than
// since are skipped when since is non-zero.
func ReadVisits(ctx context.Context, path string, flavor Flavor, since time.Time) ([]Visit, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("profile database: %w", err)
	}

	// mode=ro keeps the source profile untouched; immutable skips
	// locking so a database still owned by a running browser can be
	// read from a copy.
	dsn := "file:" + path + "?mode=ro&immutable=1"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open profile database: %w", err)
	}
	defer db.Close()

	switch flavor {
	case FlavorChrome:
		return readChrome(ctx, db, since)
	case FlavorFirefox:
		return readFirefox(ctx, db, since)
	default:
		return nil, fmt.Errorf("unknown browser flavor %q (use %q or %q)", flavor, FlavorChrome, FlavorFirefox)
	}
}

// readChrome scans the Chromium urls table. last_visit_time counts
// microseconds since 1601-01-01.
func readChrome(ctx context.Context, db *sql.DB, since time.Time) ([]Visit, error) {
	query := `
		SELECT url, title, last_visit_time
		FROM urls
		WHERE hidden = 0 AND last_visit_time > 0
		ORDER BY last_visit_time DESC
	`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query urls: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var title sql.NullString
		var lastVisit int64
		if err := rows.Scan(&v.URL, &title, &lastVisit); err != nil {
			return nil, fmt.Errorf("scan url row: %w", err)
		}
		v.Title = title.String
		v.VisitedAt = chromeTime(lastVisit)
		if !since.IsZero() && v.VisitedAt.Before(since) {
			continue
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// readFirefox scans moz_places. last_visit_date counts microseconds
// since the Unix epoch and is NULL for never-visited places.
func readFirefox(ctx context.Context, db *sql.DB, since time.Time) ([]Visit, error) {
	query := `
		SELECT url, title, last_visit_date
		FROM moz_places
		WHERE last_visit_date IS NOT NULL
		ORDER BY last_visit_date DESC
	`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query moz_places: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var title sql.NullString
		var lastVisit int64
		if err := rows.Scan(&v.URL, &title, &lastVisit); err != nil {
			return nil, fmt.Errorf("scan moz_places row: %w", err)
		}
		v.Title = title.String
		v.VisitedAt = time.UnixMicro(lastVisit).UTC()
		if !since.IsZero() && v.VisitedAt.Before(since) {
			continue
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// chromeTime converts a WebKit-epoch microsecond count to a time.Time.
func chromeTime(us int64) time.Time {
	return time.UnixMicro(us - webkitEpochOffsetSeconds*1_000_000).UTC()
}
