package storage

import (
	"context"
)

// SessionStorage defines interface for storing session data on client.
// This is the lowest storage layer - it works with raw data (already
// encrypted tokens) and doesn't perform any encryption/decryption itself.
type SessionStorage interface {
	// SaveSession stores session data as-is (tokens should already be encrypted)
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves stored session data as-is (tokens will be encrypted)
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes stored session data (logout)
	DeleteSession(ctx context.Context) error

	// IsAuthenticated checks if valid session exists (not expired)
	IsAuthenticated(ctx context.Context) (bool, error)
}

// SessionData represents session information in storage.
// IMPORTANT: this struct is used at different layers with different token states:
// - In memory (business logic): tokens are plaintext
// - In storage (BoltDB): tokens are encrypted (base64-encoded ciphertext)
// The encryption/decryption happens in session.Service layer.
type SessionData struct {
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	Permissions  []string `json:"permissions"`
	ExpiresAt    int64    `json:"expires_at"`
}
