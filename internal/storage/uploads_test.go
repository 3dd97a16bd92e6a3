package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReceipt(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateReceipt("image/png", 1024))
	require.NoError(t, ValidateReceipt("image/jpeg", MaxReceiptSize))

	assert.ErrorIs(t, ValidateReceipt("application/pdf", 1024), ErrNotImage)
	assert.ErrorIs(t, ValidateReceipt("text/plain", 1024), ErrNotImage)
	assert.ErrorIs(t, ValidateReceipt("image/png", MaxReceiptSize+1), ErrTooLarge)
}

func TestValidateDesign(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateDesign("logo.pdf", 1024))
	require.NoError(t, ValidateDesign("artwork.AI", 1024))
	require.NoError(t, ValidateDesign("mockup.psd", 1024))
	require.NoError(t, ValidateDesign("shirt.jpeg", MaxDesignSize))

	assert.ErrorIs(t, ValidateDesign("notes.txt", 1024), ErrBadType)
	assert.ErrorIs(t, ValidateDesign("archive.zip", 1024), ErrBadType)
	assert.ErrorIs(t, ValidateDesign("noextension", 1024), ErrBadType)
	assert.ErrorIs(t, ValidateDesign("logo.pdf", MaxDesignSize+1), ErrTooLarge)
}

func TestDiskStore_Save(t *testing.T) {
	t.Parallel()

	store := &DiskStore{Dir: t.TempDir(), PublicBase: "/uploads"}

	content := "fake image bytes"
	url, err := store.Save(context.Background(), "receipts", "proof.png", "image/png", int64(len(content)), strings.NewReader(content))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(url, "/uploads/receipts/"), "got %q", url)
	assert.True(t, strings.HasSuffix(url, ".png"))

	key := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(store.Dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestDiskStore_SaveTruncatesToDeclaredSize(t *testing.T) {
	t.Parallel()

	store := &DiskStore{Dir: t.TempDir(), PublicBase: "/uploads"}

	url, err := store.Save(context.Background(), "receipts", "proof.png", "image/png", 4, strings.NewReader("12345678"))
	require.NoError(t, err)

	key := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(store.Dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, "1234", string(data))
}

func TestDiskStore_UniqueKeys(t *testing.T) {
	t.Parallel()

	store := &DiskStore{Dir: t.TempDir(), PublicBase: "/uploads"}

	a, err := store.Save(context.Background(), "receipts", "proof.png", "image/png", 1, strings.NewReader("a"))
	require.NoError(t, err)
	b, err := store.Save(context.Background(), "receipts", "proof.png", "image/png", 1, strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
