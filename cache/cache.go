// Package cache stores encoded buffers in SQLite, keyed by a hash of the
// input document and every option that affects the output.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/chazu/astbin/astbin"
	"github.com/chazu/astbin/estree"
)

// ErrMiss indicates the key has no stored buffer.
var ErrMiss = errors.New("cache miss")

// Cache handles SQLite storage for encoded buffers. It is safe for
// concurrent use.
type Cache struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens or creates the cache database at path.
func Open(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One writer at a time; readers wait on the busy timeout.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS buffers (
		key  TEXT PRIMARY KEY,
		data BLOB NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating table: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Get returns the buffer stored under key, or ErrMiss.
func (c *Cache) Get(key string) ([]byte, error) {
	var data []byte
	err := c.db.QueryRow("SELECT data FROM buffers WHERE key = ?", key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("querying buffer: %w", err)
	}
	return data, nil
}

// Put stores data under key, replacing any earlier value.
func (c *Cache) Put(key string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.Exec("INSERT OR REPLACE INTO buffers (key, data) VALUES (?, ?)", key, data)
	if err != nil {
		return fmt.Errorf("saving buffer: %w", err)
	}
	return nil
}

// Len returns the number of stored buffers.
func (c *Cache) Len() (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM buffers").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting buffers: %w", err)
	}
	return n, nil
}

// Key derives the cache key for input encoded with the given options. The
// kind table size is part of the key so appending kinds invalidates old
// entries.
func Key(input []byte, eo astbin.Options, po estree.Options) string {
	h := sha256.New()
	fmt.Fprintf(h, "astbin kinds=%d spans=%d unsupported=%d source=%s\n",
		astbin.KindCount, eo.Spans, eo.Unsupported, po.SourceType)
	h.Write(input)
	return hex.EncodeToString(h.Sum(nil))
}
