package clipboard

import (
	"crypto/sha512"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexPassSingleItem(t *testing.T) {
	_, cb := newTestClipboard(t)
	require.NoError(t, cb.WriteRaw("user=alice token=abc123 token=def456 done"))
	require.NoError(t, cb.SetIgnoreRegexes([]string{`token=\w+ `}))

	require.NoError(t, cb.ApplyIgnoreRules())

	content, err := cb.ReadRaw()
	require.NoError(t, err)
	assert.Equal(t, "user=alice done", content)
}

func TestRegexPassMultiItem(t *testing.T) {
	_, cb := newTestClipboard(t)
	require.NoError(t, os.WriteFile(filepath.Join(cb.DataDir(), "secret1.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(cb.DataDir(), "keep.txt"), []byte("y"), 0o600))
	require.NoError(t, cb.SetIgnoreRegexes([]string{`^secret.*`}))

	require.NoError(t, cb.ApplyIgnoreRules())

	assert.NoFileExists(t, filepath.Join(cb.DataDir(), "secret1.txt"))
	b, err := os.ReadFile(filepath.Join(cb.DataDir(), "keep.txt"))
	require.NoError(t, err)
	assert.Equal(t, "y", string(b))
}

func TestRegexPassNameMatchMustBeFull(t *testing.T) {
	_, cb := newTestClipboard(t)
	require.NoError(t, os.WriteFile(filepath.Join(cb.DataDir(), "my-secret"), []byte("x"), 0o600))
	require.NoError(t, cb.SetIgnoreRegexes([]string{`secret`}))

	require.NoError(t, cb.ApplyIgnoreRules())

	// "secret" matches inside the name but not the whole name.
	assert.FileExists(t, filepath.Join(cb.DataDir(), "my-secret"))
}

func TestRegexPassRemovesDirectoriesRecursively(t *testing.T) {
	_, cb := newTestClipboard(t)
	nested := filepath.Join(cb.DataDir(), "secrets", "inner")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "key"), []byte("x"), 0o600))
	require.NoError(t, cb.SetIgnoreRegexes([]string{`secrets`}))

	require.NoError(t, cb.ApplyIgnoreRules())
	assert.NoDirExists(t, filepath.Join(cb.DataDir(), "secrets"))
}

func TestInvalidPatternIsSkipped(t *testing.T) {
	_, cb := newTestClipboard(t)
	require.NoError(t, cb.WriteRaw("abc"))
	require.NoError(t, cb.SetIgnoreRegexes([]string{`(unclosed`, `b`}))

	require.NoError(t, cb.ApplyIgnoreRules())

	content, err := cb.ReadRaw()
	require.NoError(t, err)
	assert.Equal(t, "ac", content)
}

func TestSecretPassRedactsMatchingPayload(t *testing.T) {
	_, cb := newTestClipboard(t)
	require.NoError(t, cb.WriteRaw("password123"))

	sum := sha512.Sum512([]byte("password123"))
	require.NoError(t, cb.SetIgnoreSecrets([]string{hex.EncodeToString(sum[:])}))

	require.NoError(t, cb.ApplyIgnoreRules())

	content, err := cb.ReadRaw()
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestSecretPassLeavesOtherPayloads(t *testing.T) {
	_, cb := newTestClipboard(t)
	require.NoError(t, cb.WriteRaw("harmless"))

	sum := sha512.Sum512([]byte("password123"))
	require.NoError(t, cb.SetIgnoreSecrets([]string{hex.EncodeToString(sum[:])}))

	require.NoError(t, cb.ApplyIgnoreRules())

	content, err := cb.ReadRaw()
	require.NoError(t, err)
	assert.Equal(t, "harmless", content)
}

func TestSecretPassSkipsItemTrees(t *testing.T) {
	_, cb := newTestClipboard(t)
	require.NoError(t, os.WriteFile(filepath.Join(cb.DataDir(), "file.txt"), []byte("password123"), 0o600))

	sum := sha512.Sum512([]byte("password123"))
	require.NoError(t, cb.SetIgnoreSecrets([]string{hex.EncodeToString(sum[:])}))

	require.NoError(t, cb.ApplyIgnoreRules())
	assert.FileExists(t, filepath.Join(cb.DataDir(), "file.txt"))
}

func TestApplyIgnoreRulesWithoutRuleFiles(t *testing.T) {
	_, cb := newTestClipboard(t)
	require.NoError(t, cb.WriteRaw("untouched"))

	require.NoError(t, cb.ApplyIgnoreRules())

	content, err := cb.ReadRaw()
	require.NoError(t, err)
	assert.Equal(t, "untouched", content)
}
