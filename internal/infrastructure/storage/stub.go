package storage

import (
	"context"
	"net/url"
	"time"

	catalogapp "github.com/erp/bizhub/internal/application/catalog"
)

// LocalObjectStorage builds unsigned URLs under BaseURL. It is used when S3
// storage is disabled so the image flow keeps working in development.
type LocalObjectStorage struct {
	BaseURL    string
	Expiration time.Duration
}

// NewLocalObjectStorage creates a local storage rooted at baseURL
func NewLocalObjectStorage(baseURL string) *LocalObjectStorage {
	return &LocalObjectStorage{BaseURL: baseURL, Expiration: 15 * time.Minute}
}

var _ catalogapp.ObjectStorage = (*LocalObjectStorage)(nil)

func (s *LocalObjectStorage) url(action, storageKey string) (string, time.Time) {
	expiresAt := time.Now().Add(s.Expiration)
	q := url.Values{"expires": {expiresAt.UTC().Format(time.RFC3339)}}
	return s.BaseURL + "/" + action + "/" + storageKey + "?" + q.Encode(), expiresAt
}

// GenerateUploadURL returns an upload URL for storageKey
func (s *LocalObjectStorage) GenerateUploadURL(_ context.Context, storageKey, _ string) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, ErrEmptyKey
	}
	u, exp := s.url("upload", storageKey)
	return u, exp, nil
}

// GenerateDownloadURL returns a download URL for storageKey
func (s *LocalObjectStorage) GenerateDownloadURL(_ context.Context, storageKey string) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, ErrEmptyKey
	}
	u, exp := s.url("download", storageKey)
	return u, exp, nil
}

// DeleteObject does nothing
func (s *LocalObjectStorage) DeleteObject(_ context.Context, storageKey string) error {
	if storageKey == "" {
		return ErrEmptyKey
	}
	return nil
}
