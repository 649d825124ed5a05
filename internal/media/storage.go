// Package media stores uploaded media files in a blob bucket using
// gocloud.dev, so local disk and cloud object stores share one code path.
package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"gocloud.dev/blob"

	// Register bucket drivers selected by the bucket URL scheme
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"
)

// Storage writes media files to the configured bucket.
type Storage struct {
	bucket *blob.Bucket
}

// OpenStorage opens the bucket for the given URL.
// Supports: file://, s3://
func OpenStorage(ctx context.Context, bucketURL string) (*Storage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open media bucket: %w", err)
	}
	return &Storage{bucket: bucket}, nil
}

// SaveProfileImage stores an avatar under profile-images/<userID><ext> and
// returns the blob key as the image URL. Re-uploading replaces the previous
// image for the user.
func (s *Storage) SaveProfileImage(ctx context.Context, userID string, filename string, r io.Reader) (string, error) {
	key := "profile-images/" + userID + normalizeExtension(filename)

	w, err := s.bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return "", fmt.Errorf("failed to open blob writer: %w", err)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write profile image: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finish profile image write: %w", err)
	}

	return key, nil
}

// Close releases the underlying bucket.
func (s *Storage) Close() error {
	return s.bucket.Close()
}

// normalizeExtension keeps a known-safe image extension, defaulting to .png.
func normalizeExtension(filename string) string {
	switch ext := strings.ToLower(path.Ext(filename)); ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return ext
	default:
		return ".png"
	}
}
