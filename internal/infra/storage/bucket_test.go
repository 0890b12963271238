package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketStore_Save(t *testing.T) {
	ctx := context.Background()
	store, err := OpenBucket(ctx, "mem://", "https://assets.bizvistar.test")
	require.NoError(t, err)
	defer store.Close()

	url, err := store.Save(ctx, "posters/site-1.png", "image/png", []byte{0x89, 0x50, 0x4e, 0x47})
	require.NoError(t, err)
	assert.Equal(t, "https://assets.bizvistar.test/posters/site-1.png", url)

	bucket := store.(*bucketStore).bucket
	data, err := bucket.ReadAll(ctx, "posters/site-1.png")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, data)
}

func TestBucketStore_Save_NoPublicBaseURL(t *testing.T) {
	ctx := context.Background()
	store, err := OpenBucket(ctx, "mem://", "")
	require.NoError(t, err)
	defer store.Close()

	url, err := store.Save(ctx, "invoices/site-1/ord-42.html", "text/html", []byte("<html></html>"))
	require.NoError(t, err)
	assert.Equal(t, "invoices/site-1/ord-42.html", url)
}

func TestBucketStore_Save_EmptyKey(t *testing.T) {
	ctx := context.Background()
	store, err := OpenBucket(ctx, "mem://", "")
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Save(ctx, "", "image/png", []byte("data"))
	assert.Error(t, err)
}
