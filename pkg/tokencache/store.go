// Package tokencache persists OAuth2 access tokens across process
// restarts. Tokens are keyed by client id so one store can serve several
// seller accounts.
package tokencache

import (
	"context"
	"time"
)

// ReadableLayout formats the human-readable timestamps stored next to the
// unix ones.
const ReadableLayout = "2006-01-02 15:04:05"

// DefaultBuffer is the margin before expiry at which a cached token is
// considered stale.
const DefaultBuffer = 60 * time.Second

// Entry is one cached token. ExpiresAt and CreatedAt are unix seconds.
type Entry struct {
	AccessToken       string `json:"access_token"`
	ExpiresIn         int64  `json:"expires_in"`
	ExpiresAt         int64  `json:"expires_at"`
	ExpiresAtReadable string `json:"expires_at_readable"`
	CreatedAt         int64  `json:"created_at"`
	CreatedAtReadable string `json:"created_at_readable"`
}

func newEntry(token string, expiresIn time.Duration, now time.Time) Entry {
	secs := int64(expiresIn / time.Second)
	expiresAt := now.Unix() + secs
	return Entry{
		AccessToken:       token,
		ExpiresIn:         secs,
		ExpiresAt:         expiresAt,
		ExpiresAtReadable: time.Unix(expiresAt, 0).Format(ReadableLayout),
		CreatedAt:         now.Unix(),
		CreatedAtReadable: time.Unix(now.Unix(), 0).Format(ReadableLayout),
	}
}

// Expired reports whether the entry is unusable at now, treating it as
// expired buffer before its actual expiry.
func (e *Entry) Expired(now time.Time, buffer time.Duration) bool {
	return now.Unix() >= e.ExpiresAt-int64(buffer/time.Second)
}

// ExpiresAtTime returns ExpiresAt as a time.Time.
func (e *Entry) ExpiresAtTime() time.Time {
	return time.Unix(e.ExpiresAt, 0)
}

// Store is the persistent token tier used by the transport. Lookups never
// fail: an unreadable store behaves like an empty one. Mutations return
// an error when the backing medium could not be written.
type Store interface {
	// Get returns the entry for clientID, expired or not.
	Get(ctx context.Context, clientID string) (*Entry, bool)
	// ValidToken returns the token when it is not within buffer of its
	// expiry. Stale entries are removed.
	ValidToken(ctx context.Context, clientID string, buffer time.Duration) (string, bool)
	Save(ctx context.Context, clientID, token string, expiresIn time.Duration) error
	// Delete succeeds when clientID is absent.
	Delete(ctx context.Context, clientID string) error
	// Clear removes every entry.
	Clear(ctx context.Context) error
	HasValidToken(ctx context.Context, clientID string, buffer time.Duration) bool
	ExpiresAt(ctx context.Context, clientID string) (time.Time, bool)
	// RemainingLifetime is negative for expired entries.
	RemainingLifetime(ctx context.Context, clientID string) (time.Duration, bool)
	// Path describes where tokens are kept: a file path or a redis key
	// prefix.
	Path() string
}
