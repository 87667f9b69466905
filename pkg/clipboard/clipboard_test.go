package clipboard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestResolver returns a resolver whose namespaces both live under a
// fresh temp directory.
func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	base := t.TempDir()
	res, err := NewResolver(ResolverOptions{
		PersistentDir: filepath.Join(base, "persistent"),
		TemporaryDir:  filepath.Join(base, "temporary"),
	})
	require.NoError(t, err)
	return res
}

func newTestClipboard(t *testing.T) (*Resolver, *Clipboard) {
	t.Helper()
	res := newTestResolver(t)
	cb, err := Open(res, "test", 0)
	require.NoError(t, err)
	return res, cb
}

func TestOpenCreatesLayout(t *testing.T) {
	_, cb := newTestClipboard(t)

	assert.DirExists(t, filepath.Join(cb.Root(), "data", "0"))
	assert.DirExists(t, cb.Metadata().Dir)

	b, err := os.ReadFile(cb.Metadata().Version)
	require.NoError(t, err)
	assert.Equal(t, StorageProtocolVersion, string(b))
}

func TestOpenIsIdempotent(t *testing.T) {
	res, cb := newTestClipboard(t)
	require.NoError(t, cb.WriteRaw("hello"))

	again, err := Open(res, "test", 0)
	require.NoError(t, err)

	content, err := again.ReadRaw()
	require.NoError(t, err)
	assert.Equal(t, "hello", content)
	assert.Equal(t, cb.Index().IDs(), again.Index().IDs())
}

func TestOpenOutOfRangeRank(t *testing.T) {
	res := newTestResolver(t)
	_, err := Open(res, "test", 5)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var notFound *EntryNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 5, notFound.Rank)
}

func TestHoldsRawData(t *testing.T) {
	_, cb := newTestClipboard(t)

	t.Run("no payload file", func(t *testing.T) {
		assert.False(t, cb.HoldsRawData())
	})

	t.Run("empty payload file", func(t *testing.T) {
		require.NoError(t, cb.WriteRaw(""))
		assert.False(t, cb.HoldsRawData())
	})

	t.Run("non-empty payload", func(t *testing.T) {
		require.NoError(t, cb.WriteRaw("data"))
		assert.True(t, cb.HoldsRawData())
	})
}

func TestHoldsDataInCurrentEntry(t *testing.T) {
	t.Run("empty entry", func(t *testing.T) {
		_, cb := newTestClipboard(t)
		assert.False(t, cb.HoldsDataInCurrentEntry())
	})

	t.Run("raw payload", func(t *testing.T) {
		_, cb := newTestClipboard(t)
		require.NoError(t, cb.WriteRaw("data"))
		assert.True(t, cb.HoldsDataInCurrentEntry())
	})

	t.Run("item tree", func(t *testing.T) {
		_, cb := newTestClipboard(t)
		require.NoError(t, os.WriteFile(filepath.Join(cb.DataDir(), "a.txt"), []byte("x"), 0o600))
		assert.True(t, cb.HoldsDataInCurrentEntry())
	})

	t.Run("only empty items", func(t *testing.T) {
		_, cb := newTestClipboard(t)
		require.NoError(t, os.WriteFile(filepath.Join(cb.DataDir(), "a.txt"), nil, 0o600))
		assert.False(t, cb.HoldsDataInCurrentEntry())
	})
}

func TestHoldsDataAcrossEntries(t *testing.T) {
	_, cb := newTestClipboard(t)
	require.NoError(t, cb.WriteRaw("old"))

	require.NoError(t, cb.NewEntry())
	assert.False(t, cb.HoldsDataInCurrentEntry())
	assert.True(t, cb.HoldsData())
}

func TestIsUnused(t *testing.T) {
	t.Run("fresh clipboard", func(t *testing.T) {
		_, cb := newTestClipboard(t)
		assert.True(t, cb.IsUnused())
	})

	t.Run("with data", func(t *testing.T) {
		_, cb := newTestClipboard(t)
		require.NoError(t, cb.WriteRaw("data"))
		assert.False(t, cb.IsUnused())
	})

	t.Run("with notes", func(t *testing.T) {
		_, cb := newTestClipboard(t)
		require.NoError(t, cb.SetNotes("remember this"))
		assert.False(t, cb.IsUnused())
	})
}

func TestNotesRoundTrip(t *testing.T) {
	_, cb := newTestClipboard(t)
	assert.Empty(t, cb.Notes())

	require.NoError(t, cb.SetNotes("scratch space for work"))
	assert.Equal(t, "scratch space for work", cb.Notes())
}

func TestSetEntry(t *testing.T) {
	_, cb := newTestClipboard(t)
	require.NoError(t, cb.WriteRaw("first"))
	require.NoError(t, cb.NewEntry())
	require.NoError(t, cb.WriteRaw("second"))

	require.NoError(t, cb.SetEntry(1))
	content, err := cb.ReadRaw()
	require.NoError(t, err)
	assert.Equal(t, "first", content)

	err = cb.SetEntry(7)
	assert.True(t, IsNotFound(err))
}

func TestClearHistory(t *testing.T) {
	_, cb := newTestClipboard(t)
	for i := 0; i < 3; i++ {
		require.NoError(t, cb.NewEntry())
		require.NoError(t, cb.WriteRaw("data"))
	}
	require.Equal(t, 4, cb.Index().Len())

	require.NoError(t, cb.ClearHistory())
	assert.Equal(t, []uint64{0}, cb.Index().IDs())
	assert.DirExists(t, cb.DataDir())
	assert.False(t, cb.HoldsData())
}
