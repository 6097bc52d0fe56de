package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// Object key prefixes per photo kind.
const (
	FoodPhotoPrefix     = "food"
	ProgressPhotoPrefix = "progress"
)

// FileStorage defines the interface for object storage operations.
type FileStorage interface {
	// Upload stores an object under the given key. Used for photos the
	// server receives inline (as data URLs) and re-uploads itself.
	Upload(ctx context.Context, objectKey string, contentType string, data []byte) error

	// GeneratePresignedUploadURL creates a temporary URL that allows PUT requests
	// for uploading an object directly to the storage provider.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET requests
	// for downloading/viewing an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}

// PhotoKey builds a unique object key like "food/5f3a....jpg".
func PhotoKey(prefix string) string {
	return fmt.Sprintf("%s/%s.jpg", prefix, uuid.NewString())
}

// ThumbnailKey derives the thumbnail key for a photo key:
// "food/5f3a....jpg" -> "food/thumb/5f3a....jpg".
func ThumbnailKey(photoKey string) string {
	for i, c := range photoKey {
		if c == '/' {
			return photoKey[:i] + "/thumb" + photoKey[i:]
		}
	}
	return "thumb/" + photoKey
}
