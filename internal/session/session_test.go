package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryStore())

	id, err := s.CartID(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, s.SetCartID(ctx, "gid://shopify/Cart/1"))
	require.NoError(t, s.SetAccessToken(ctx, "tok"))

	loggedIn, err := s.LoggedIn(ctx)
	require.NoError(t, err)
	assert.True(t, loggedIn)

	t.Run("logout keeps the cart", func(t *testing.T) {
		require.NoError(t, s.Logout(ctx))
		tok, _ := s.AccessToken(ctx)
		assert.Empty(t, tok)
		id, _ := s.CartID(ctx)
		assert.Equal(t, "gid://shopify/Cart/1", id)
	})

	t.Run("clear drops everything", func(t *testing.T) {
		require.NoError(t, s.SetAccessToken(ctx, "tok"))
		require.NoError(t, s.Clear(ctx))
		tok, _ := s.AccessToken(ctx)
		id, _ := s.CartID(ctx)
		assert.Empty(t, tok)
		assert.Empty(t, id)
	})
}
