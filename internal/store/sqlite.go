// Package store provides the optional sqlite-backed page cache.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/leadforge/leadscan-cli/internal/model"
)

// PageCache stores fetched pages with a TTL so repeated scans of the same
// candidate list do not re-hit third-party sites.
type PageCache struct {
	db  *sql.DB
	ttl time.Duration
}

// NewPageCache opens (or creates) a sqlite cache at the given path and
// configures WAL mode.
func NewPageCache(dsn string, ttl time.Duration) (*PageCache, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "store: open sqlite")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, eris.Wrapf(err, "store: exec %s", pragma)
		}
	}
	return &PageCache{db: db, ttl: ttl}, nil
}

const migration = `
CREATE TABLE IF NOT EXISTS page_cache (
	id          TEXT PRIMARY KEY,
	url         TEXT NOT NULL,
	final_url   TEXT NOT NULL,
	status_code INTEGER NOT NULL,
	body        TEXT NOT NULL,
	fetched_at  DATETIME NOT NULL DEFAULT (datetime('now')),
	expires_at  DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_page_cache_url ON page_cache(url);
CREATE INDEX IF NOT EXISTS idx_page_cache_expires_at ON page_cache(expires_at);
`

// Migrate creates the cache schema.
func (c *PageCache) Migrate(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, migration)
	return eris.Wrap(err, "store: migrate")
}

// Close closes the underlying database.
func (c *PageCache) Close() error {
	return c.db.Close()
}

// Get returns the cached page for a URL if a non-expired entry exists.
func (c *PageCache) Get(ctx context.Context, url string) (*model.FetchResult, bool, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT final_url, status_code, body FROM page_cache
		 WHERE url = ? AND expires_at > ?
		 ORDER BY fetched_at DESC LIMIT 1`,
		url, time.Now().UTC(),
	)

	var res model.FetchResult
	err := row.Scan(&res.FinalURL, &res.StatusCode, &res.RawHTML)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, eris.Wrap(err, "store: get page")
	}
	return &res, true, nil
}

// Put stores a fetched page, replacing any previous entry for the URL.
func (c *PageCache) Put(ctx context.Context, url string, res *model.FetchResult) error {
	now := time.Now().UTC()

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "store: begin tx")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM page_cache WHERE url = ?`, url); err != nil {
		return eris.Wrap(err, "store: evict page")
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO page_cache (id, url, final_url, status_code, body, fetched_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), url, res.FinalURL, res.StatusCode, res.RawHTML, now, now.Add(c.ttl),
	)
	if err != nil {
		return eris.Wrap(err, "store: insert page")
	}
	return eris.Wrap(tx.Commit(), "store: commit")
}

// Prune removes expired entries and returns how many were deleted.
func (c *PageCache) Prune(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx,
		`DELETE FROM page_cache WHERE expires_at <= ?`, time.Now().UTC(),
	)
	if err != nil {
		return 0, eris.Wrap(err, "store: prune")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, eris.Wrap(err, "store: rows affected")
	}
	return n, nil
}
