package providers

import (
	"context"
	"io"
)

// CacheProvider defines the interface for cache operations
type CacheProvider interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in cache with expiration
	Set(ctx context.Context, key string, value []byte, expirationSeconds int) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error

	// Exists checks if a key exists in cache
	Exists(ctx context.Context, key string) (bool, error)
}

// EmailSender delivers transactional mail (password resets and the like)
type EmailSender interface {
	// Send delivers a plain-text message to a single recipient
	Send(ctx context.Context, to, subject, body string) error
}

// ImageStore persists uploaded images and returns their public URLs
type ImageStore interface {
	// Save stores one image and returns the URL under which it is served
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}
