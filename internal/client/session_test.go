package client

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStores(t *testing.T) {
	stores := map[string]TokenStore{
		"memory": NewMemoryTokenStore(),
		"file":   NewFileTokenStore(filepath.Join(t.TempDir(), "nested", "token")),
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			_, err := store.GetToken()
			assert.ErrorIs(t, err, ErrNoToken)

			require.NoError(t, store.SetToken("abc"))
			token, err := store.GetToken()
			require.NoError(t, err)
			assert.Equal(t, "abc", token)

			require.NoError(t, store.ClearToken())
			_, err = store.GetToken()
			assert.ErrorIs(t, err, ErrNoToken)

			// clearing twice is fine
			assert.NoError(t, store.ClearToken())
		})
	}
}

func TestFileTokenStorePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, NewFileTokenStore(path).SetToken("secret"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSessionAuthorize(t *testing.T) {
	s := NewSession(nil)
	req, err := http.NewRequest(http.MethodGet, "http://example.test", nil)
	require.NoError(t, err)

	require.NoError(t, s.Authorize(req))
	assert.Empty(t, req.Header.Get("Authorization"))
	assert.False(t, s.LoggedIn())

	require.NoError(t, s.Start("tok"))
	require.NoError(t, s.Authorize(req))
	assert.Equal(t, "Bearer tok", req.Header.Get("Authorization"))
	assert.True(t, s.LoggedIn())
}
