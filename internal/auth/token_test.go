package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignerRoundTrip(t *testing.T) {
	s := NewSigner("secret", time.Hour, KindClient)
	tok, err := s.Issue(42, "alice")
	require.NoError(t, err)

	id, err := s.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, Identity{UserID: 42, Name: "alice", Kind: KindClient}, id)
}

func TestSignerRejectsOtherKindAndSecret(t *testing.T) {
	admin := NewSigner("secret", time.Hour, KindAdmin)
	client := NewSigner("secret", time.Hour, KindClient)
	tok, err := admin.Issue(1, "root")
	require.NoError(t, err)

	_, err = client.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewSigner("other", time.Hour, KindAdmin)
	_, err = other.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSignerExpired(t *testing.T) {
	s := NewSigner("secret", -time.Minute, KindClient)
	tok, err := s.Issue(1, "bob")
	require.NoError(t, err)

	_, err = s.Parse(tok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestIdentityContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithIdentity(context.Background(), Identity{UserID: 7, Kind: KindAdmin})
	id, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(7), id.UserID)
}
