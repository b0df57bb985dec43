package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/shoping-storefront/internal/session"
)

func TestStore_PersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.db")

	st, err := Open(path)
	require.NoError(t, err)

	sess := session.New(st)
	require.NoError(t, sess.SetCartID(ctx, "gid://shopify/Cart/1"))
	require.NoError(t, sess.SetCartID(ctx, "gid://shopify/Cart/2"))
	require.NoError(t, sess.SetAccessToken(ctx, "tok"))
	require.NoError(t, st.Close())

	st, err = Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	sess = session.New(st)
	id, err := sess.CartID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/Cart/2", id)

	require.NoError(t, sess.Logout(ctx))
	_, ok, err := st.Get(ctx, session.KeyAccessToken)
	require.NoError(t, err)
	assert.False(t, ok)
}
