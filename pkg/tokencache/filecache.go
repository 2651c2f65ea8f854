package tokencache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/tidwall/gjson"
)

// DefaultFileName is the cache file created in os.TempDir() when no path
// is configured.
const DefaultFileName = ".cdiscount_token_cache.json"

// document is the on-disk layout: client id to entry. Entries are kept
// raw so fields and keys this package does not know survive a rewrite.
type document map[string]json.RawMessage

// FileCache stores tokens in a pretty-printed JSON file. The file is read
// lazily once and mirrored in memory. Every mutation is applied to a fresh
// read of the file taken under an exclusive lock on <path>.lock, then
// written back atomically, so concurrent writers from other processes do
// not lose each other's entries.
type FileCache struct {
	path    string
	nowFunc func() time.Time
	logger  *slog.Logger

	mu     sync.Mutex
	mirror document // nil until first load
}

var _ Store = (*FileCache)(nil)

// FileOption configures a FileCache.
type FileOption func(*FileCache)

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) FileOption {
	return func(c *FileCache) {
		c.nowFunc = f
	}
}

// WithLogger sets the logger used to report unreadable cache files.
func WithLogger(l *slog.Logger) FileOption {
	return func(c *FileCache) {
		c.logger = l
	}
}

// DefaultPath returns the cache location used when none is configured.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), DefaultFileName)
}

// NewFileCache returns a cache backed by path, or DefaultPath when path
// is empty. Nothing is read until the first lookup.
func NewFileCache(path string, opts ...FileOption) *FileCache {
	if path == "" {
		path = DefaultPath()
	}
	c := &FileCache{
		path:    path,
		nowFunc: time.Now,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Path returns the cache file path.
func (c *FileCache) Path() string {
	return c.path
}

// Get returns the entry for clientID when it carries both an access token
// and an expiry.
func (c *FileCache) Get(_ context.Context, clientID string) (*Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.getLocked(clientID)
}

func (c *FileCache) getLocked(clientID string) (*Entry, bool) {
	c.loadLocked()

	raw, ok := c.mirror[clientID]
	if !ok {
		return nil, false
	}
	return decodeEntry(raw)
}

// decodeEntry validates the structure of a raw entry before decoding it.
func decodeEntry(raw []byte) (*Entry, bool) {
	if !gjson.ValidBytes(raw) {
		return nil, false
	}
	fields := gjson.GetManyBytes(raw, "access_token", "expires_at")
	if !fields[0].Exists() || !fields[1].Exists() {
		return nil, false
	}

	e := &Entry{
		AccessToken: fields[0].String(),
		ExpiresAt:   fields[1].Int(),
	}
	// Remaining fields are informational; a type mismatch there does not
	// invalidate the token.
	rest := gjson.GetManyBytes(
		raw,
		"expires_in",
		"expires_at_readable",
		"created_at",
		"created_at_readable",
	)
	e.ExpiresIn = rest[0].Int()
	e.ExpiresAtReadable = rest[1].String()
	e.CreatedAt = rest[2].Int()
	e.CreatedAtReadable = rest[3].String()
	return e, true
}

// ValidToken returns the cached token unless it expires within buffer.
// A stale entry is deleted from the file.
func (c *FileCache) ValidToken(ctx context.Context, clientID string, buffer time.Duration) (string, bool) {
	c.mu.Lock()
	e, ok := c.getLocked(clientID)
	c.mu.Unlock()

	if !ok {
		return "", false
	}

	if e.Expired(c.nowFunc(), buffer) {
		if err := c.Delete(ctx, clientID); err != nil {
			c.logger.Debug("removing stale token from cache file", "path", c.path, "error", err)
		}
		return "", false
	}
	return e.AccessToken, true
}

// HasValidToken reports whether ValidToken would return a token.
func (c *FileCache) HasValidToken(ctx context.Context, clientID string, buffer time.Duration) bool {
	_, ok := c.ValidToken(ctx, clientID, buffer)
	return ok
}

// ExpiresAt returns the absolute expiry of the cached token.
func (c *FileCache) ExpiresAt(ctx context.Context, clientID string) (time.Time, bool) {
	e, ok := c.Get(ctx, clientID)
	if !ok {
		return time.Time{}, false
	}
	return e.ExpiresAtTime(), true
}

// RemainingLifetime returns the time left before the cached token
// expires. It is negative for an expired entry.
func (c *FileCache) RemainingLifetime(ctx context.Context, clientID string) (time.Duration, bool) {
	e, ok := c.Get(ctx, clientID)
	if !ok {
		return 0, false
	}
	return time.Duration(e.ExpiresAt-c.nowFunc().Unix()) * time.Second, true
}

// Save upserts the token for clientID with an expiry of now + expiresIn.
func (c *FileCache) Save(_ context.Context, clientID, token string, expiresIn time.Duration) error {
	raw, err := json.Marshal(newEntry(token, expiresIn, c.nowFunc()))
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	return c.mutate(func(doc document) bool {
		doc[clientID] = raw
		return true
	})
}

// Delete removes the entry for clientID. The file is left untouched when
// there is nothing to remove.
func (c *FileCache) Delete(_ context.Context, clientID string) error {
	c.mu.Lock()
	c.loadLocked()
	_, present := c.mirror[clientID]
	c.mu.Unlock()

	if !present {
		return nil
	}

	return c.mutate(func(doc document) bool {
		if _, ok := doc[clientID]; !ok {
			return false
		}
		delete(doc, clientID)
		return true
	})
}

// Clear empties the cache and removes the file. A missing file is not an
// error.
func (c *FileCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mirror = document{}

	unlock, err := c.lock()
	if err != nil {
		return err
	}
	defer unlock()

	if err := os.Remove(c.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing token cache file: %w", err)
	}
	return nil
}

// mutate applies fn to the current on-disk document under the file lock
// and writes the result back when fn reports a change. The mirror is
// updated even when the write fails.
func (c *FileCache) mutate(fn func(doc document) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil { //nolint:gosec // shared temp dir
		c.applyToMirrorLocked(fn)
		return fmt.Errorf("creating token cache directory: %w", err)
	}

	unlock, err := c.lock()
	if err != nil {
		c.applyToMirrorLocked(fn)
		return err
	}
	defer unlock()

	doc := c.readDocument()
	if !fn(doc) {
		c.mirror = doc
		return nil
	}
	c.mirror = doc

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding token cache: %w", err)
	}
	return writeAtomic(c.path, data)
}

func (c *FileCache) applyToMirrorLocked(fn func(doc document) bool) {
	c.loadLocked()
	fn(c.mirror)
}

func (c *FileCache) lock() (func(), error) {
	fl := flock.New(c.path + ".lock")
	if err := fl.Lock(); err != nil {
		return nil, fmt.Errorf("locking token cache: %w", err)
	}
	return func() {
		if err := fl.Unlock(); err != nil {
			c.logger.Debug("unlocking token cache", "path", c.path, "error", err)
		}
	}, nil
}

func (c *FileCache) loadLocked() {
	if c.mirror != nil {
		return
	}
	c.mirror = c.readDocument()
}

// readDocument returns the file contents, or an empty document when the
// file is missing, unreadable, or not a JSON object.
func (c *FileCache) readDocument() document {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			c.logger.Debug("reading token cache file", "path", c.path, "error", err)
		}
		return document{}
	}

	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		c.logger.Debug("ignoring malformed token cache file", "path", c.path)
		return document{}
	}

	doc := document{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}
	}
	return doc
}

// writeAtomic writes data to a temp file in the target directory, syncs it
// and renames it over path.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".token-cache-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
