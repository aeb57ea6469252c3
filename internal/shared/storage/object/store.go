package object

import (
	"context"
	"io"
	"path"
	"strconv"
	"time"
)

// BlobStore is the gateway to binary resume storage. It never deletes or
// lists blobs; stale metadata is filtered at read time by the caller.
type BlobStore interface {
	// Put writes the reader contents under key, overwriting any existing
	// object, and returns the number of bytes stored.
	Put(ctx context.Context, key string, r io.Reader) (int64, error)
	// Open reads back a stored object.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Exists probes whether the object behind key is still present.
	Exists(ctx context.Context, key string) (bool, error)
	// SignedReadURL mints a URL granting read access to key for ttl. Expiry
	// is enforced by the storage backend, not re-validated here.
	SignedReadURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// ResumeKey derives the storage key for a user's resume. The derivation is
// deterministic; re-uploading the same file name for the same user
// overwrites the previous blob.
func ResumeKey(userID int64, fileName string) string {
	return path.Join("resumes", strconv.FormatInt(userID, 10), fileName)
}
