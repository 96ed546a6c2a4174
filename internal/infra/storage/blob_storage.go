// Package storage implements the document blob store on top of gocloud.dev,
// so the same code serves a local directory in development and a cloud bucket
// in production.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"path"
	"strings"

	"vouch/config"
	"vouch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver
	_ "gocloud.dev/blob/gcsblob"  // gs:// bucket driver
	_ "gocloud.dev/blob/memblob" // mem:// bucket driver, used in tests
	"gocloud.dev/gcerrors"
)

// blobFileStorage implements service.FileStorage over a gocloud bucket.
type blobFileStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Params holds dependencies for FileStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns a FileStorage backed by it.
func New(params Params) (service.FileStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", params.Config.Storage.BucketURL)
	}

	params.Logger.Info("Document blob store initialized",
		slog.String("bucket_url", params.Config.Storage.BucketURL),
	)

	fs := &blobFileStorage{
		bucket: bucket,
		logger: params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return fs.Close()
		},
	})

	return fs, nil
}

// NewWithBucket wraps an already-open bucket. Used by tests with mem://.
func NewWithBucket(bucket *blob.Bucket, logger *slog.Logger) service.FileStorage {
	return &blobFileStorage{
		bucket: bucket,
		logger: logger,
	}
}

// Store writes the content under a key derived from suggestedPath, hashing it
// on the way through. A random suffix keeps successive uploads of the same
// file name from colliding in the bucket.
func (fs *blobFileStorage) Store(ctx context.Context, content io.Reader, suggestedPath string) (string, int64, string, error) {
	key := uniqueKey(suggestedPath)

	writer, err := fs.bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return "", 0, "", errors.Wrap(err, "failed to open blob writer")
	}

	hasher := sha256.New()
	size, err := io.Copy(io.MultiWriter(writer, hasher), content)
	if err != nil {
		_ = writer.Close()
		_ = fs.bucket.Delete(ctx, key)

		return "", 0, "", errors.Wrap(err, "failed to write blob content")
	}

	if err := writer.Close(); err != nil {
		return "", 0, "", errors.Wrap(err, "failed to finalize blob")
	}

	return key, size, hex.EncodeToString(hasher.Sum(nil)), nil
}

// Size returns the stored size of a blob in bytes.
func (fs *blobFileStorage) Size(ctx context.Context, storedPath string) (int64, error) {
	attrs, err := fs.bucket.Attributes(ctx, storedPath)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to stat blob %s", storedPath)
	}

	return attrs.Size, nil
}

// Read opens the blob for reading. The caller owns the returned reader.
func (fs *blobFileStorage) Read(ctx context.Context, storedPath string) (io.ReadCloser, error) {
	reader, err := fs.bucket.NewReader(ctx, storedPath, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open blob %s", storedPath)
	}

	return reader, nil
}

// Delete removes a blob. Deleting a missing blob is not an error.
func (fs *blobFileStorage) Delete(ctx context.Context, storedPath string) error {
	err := fs.bucket.Delete(ctx, storedPath)
	if err != nil && gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}

	return errors.Wrapf(err, "failed to delete blob %s", storedPath)
}

// Close releases the bucket handle.
func (fs *blobFileStorage) Close() error {
	return errors.WithStack(fs.bucket.Close())
}

// uniqueKey inserts a short random segment before the file name, preserving
// the directory layout and extension of the suggested path.
func uniqueKey(suggestedPath string) string {
	dir, file := path.Split(suggestedPath)
	suffix := strings.Split(uuid.NewString(), "-")[0]

	return dir + suffix + "-" + file
}
