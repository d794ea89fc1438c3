package gateway

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// balanceCacheSchema is a single on-disk table, created idempotently on
// open.
const balanceCacheSchema = `
CREATE TABLE IF NOT EXISTS balance_cache (
    address TEXT PRIMARY KEY,
    balance TEXT NOT NULL,
    cached_at TIMESTAMP NOT NULL
);
`

// balanceCache is a local read-through cache over BalanceOf responses,
// backed directly by database/sql and modernc.org/sqlite (a pure-Go
// driver, unlike the indexer's GORM-mediated glebarez/sqlite dialector)
// so the gateway's hottest read path can skip the ORM layer.
type balanceCache struct {
	db *sql.DB
}

// OpenBalanceCache opens (creating if necessary) a balance cache at path.
// An empty path opens a private in-memory cache, useful for tests and
// single-process deployments that don't need the cache to survive a
// restart.
func OpenBalanceCache(path string) (*balanceCache, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = "file::memory:?cache=shared"
	}
	db, err := sql.Open("sqlite", trimmed)
	if err != nil {
		return nil, fmt.Errorf("balance cache: open: %w", err)
	}
	if _, err := db.Exec(balanceCacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("balance cache: apply schema: %w", err)
	}
	return &balanceCache{db: db}, nil
}

func (c *balanceCache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// put records addr's balance as of now, overwriting any prior entry.
func (c *balanceCache) put(addr, balance string) error {
	_, err := c.db.Exec(
		`INSERT INTO balance_cache (address, balance, cached_at) VALUES (?, ?, ?)
		 ON CONFLICT(address) DO UPDATE SET balance = excluded.balance, cached_at = excluded.cached_at`,
		addr, balance, time.Now().UTC(),
	)
	return err
}

// get returns the cached balance for addr and how long ago it was cached,
// or ok=false if addr has never been cached.
func (c *balanceCache) get(addr string) (balance string, age time.Duration, ok bool, err error) {
	var cachedAt time.Time
	row := c.db.QueryRow(`SELECT balance, cached_at FROM balance_cache WHERE address = ?`, addr)
	if scanErr := row.Scan(&balance, &cachedAt); scanErr != nil {
		if scanErr == sql.ErrNoRows {
			return "", 0, false, nil
		}
		return "", 0, false, scanErr
	}
	return balance, time.Since(cachedAt), true, nil
}

// balanceCacheTTL is how long a cached balance is trusted before the
// gateway falls back to the live ledger.
const balanceCacheTTL = 2 * time.Second
