package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/dreamjob/internal/common"
	"github.com/dmitrijs2005/dreamjob/internal/filex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "files")
	s, err := NewDiskStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	key := NewKey()
	require.NoError(t, s.Put(ctx, key, []byte("photo")))

	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("photo"), got)

	require.NoError(t, s.Delete(ctx, key))
	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, s.Delete(ctx, key), "deleting twice is fine")
}

func TestDiskStore_RejectsEscapingKeys(t *testing.T) {
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	assert.ErrorIs(t, s.Put(ctx, "../evil", []byte("x")), filex.ErrOutsideRoot)
	_, err = s.Get(ctx, "../../etc/passwd")
	assert.ErrorIs(t, err, filex.ErrOutsideRoot)
	assert.ErrorIs(t, s.Delete(ctx, "../x"), filex.ErrOutsideRoot)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	content := []byte("abc")
	require.NoError(t, s.Put(ctx, "k", content))
	content[0] = 'z'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	require.NoError(t, s.Delete(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestNewKey_Unique(t *testing.T) {
	a, b := NewKey(), NewKey()
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^files/\d{4}/\d{1,2}/\d{1,2}/[0-9a-f-]{36}$`, a)
}
