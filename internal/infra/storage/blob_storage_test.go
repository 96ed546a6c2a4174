package storage

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newMemStorage(t *testing.T) *blobFileStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewWithBucket(bucket, logger).(*blobFileStorage)
}

func TestBlobFileStorage_StoreAndRead(t *testing.T) {
	fs := newMemStorage(t)
	ctx := context.Background()

	content := []byte("fake passport scan")
	wantHash := sha256.Sum256(content)

	key, size, hash, err := fs.Store(ctx, bytes.NewReader(content), "submissions/abc/passport.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), size)
	assert.Equal(t, hex.EncodeToString(wantHash[:]), hash)

	// The key keeps the directory layout and file name around a random segment.
	assert.True(t, strings.HasPrefix(key, "submissions/abc/"))
	assert.True(t, strings.HasSuffix(key, "-passport.pdf"))

	reader, err := fs.Read(ctx, key)
	require.NoError(t, err)
	defer reader.Close()

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestBlobFileStorage_StoreDoesNotCollide(t *testing.T) {
	fs := newMemStorage(t)
	ctx := context.Background()

	first, _, _, err := fs.Store(ctx, strings.NewReader("v1"), "docs/id.pdf")
	require.NoError(t, err)
	second, _, _, err := fs.Store(ctx, strings.NewReader("v2"), "docs/id.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBlobFileStorage_Size(t *testing.T) {
	fs := newMemStorage(t)
	ctx := context.Background()

	key, _, _, err := fs.Store(ctx, strings.NewReader("12345"), "docs/size.txt")
	require.NoError(t, err)

	size, err := fs.Size(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)
}

func TestBlobFileStorage_Delete(t *testing.T) {
	fs := newMemStorage(t)
	ctx := context.Background()

	key, _, _, err := fs.Store(ctx, strings.NewReader("to be removed"), "docs/tmp.txt")
	require.NoError(t, err)

	require.NoError(t, fs.Delete(ctx, key))

	_, err = fs.Read(ctx, key)
	assert.Error(t, err)

	// Deleting a missing blob is not an error.
	assert.NoError(t, fs.Delete(ctx, key))
}
