// Package store provides the key-value data access layer for ticket
// correlation and language preferences.
package store

import (
	"context"
	"errors"
)

// ErrUnavailable marks a failure to reach the backing key-value store.
// Callers surface it for the single message being handled; it is never
// fatal to the process.
var ErrUnavailable = errors.New("store unavailable")

// Store defines the persistence operations used by the message router.
// Methods accept context.Context for cancellation and timeouts.
type Store interface {
	// PutTicket records that forwardedID in the support group originated
	// from originChatID. The record expires after the configured ticket TTL
	// and is never deleted explicitly.
	PutTicket(ctx context.Context, forwardedID int, originChatID int64) error

	// GetTicket looks up the origin chat for a forwarded message. An
	// expired or unknown id yields ok=false with no error.
	GetTicket(ctx context.Context, forwardedID int) (originChatID int64, ok bool, err error)

	// SetLanguage stores a chat's language preference. Last write wins.
	SetLanguage(ctx context.Context, chatID int64, code string) error

	// GetLanguage returns a chat's stored language preference. A chat that
	// never selected one yields ok=false with no error; callers fall back
	// to the configured default language.
	GetLanguage(ctx context.Context, chatID int64) (code string, ok bool, err error)

	// Ping checks the backend connection.
	Ping(ctx context.Context) error

	// Close releases the backend connection.
	Close() error
}
