package jwtx

import (
	"crypto/ed25519"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newKeyPair(t *testing.T) (ed25519.PrivateKey, ed25519.PublicKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return priv, pub
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	priv, pub := newKeyPair(t)
	signer := NewSigner(priv)
	verifier := NewVerifier(pub, "upchain")

	now := time.Now().UTC()
	claims := NewSessionClaims("user-1", "alice", "upchain", time.Hour, now)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "alice", got.Username)
	require.NoError(t, got.ValidateExpiry())
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	t.Parallel()

	priv, _ := newKeyPair(t)
	_, otherPub := newKeyPair(t)

	token, err := NewSigner(priv).Sign(NewSessionClaims("u", "n", "upchain", time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = NewVerifier(otherPub, "upchain").Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerifyRejectsIssuerMismatch(t *testing.T) {
	t.Parallel()

	priv, pub := newKeyPair(t)
	token, err := NewSigner(priv).Sign(NewSessionClaims("u", "n", "someone-else", time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = NewVerifier(pub, "upchain").Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestValidateExpiryFlagsExpiredTokens(t *testing.T) {
	t.Parallel()

	priv, pub := newKeyPair(t)
	expired := NewSessionClaims("u", "n", "upchain", time.Minute, time.Now().Add(-time.Hour))

	token, err := NewSigner(priv).Sign(expired)
	require.NoError(t, err)

	got, err := NewVerifier(pub, "upchain").Verify(token)
	require.NoError(t, err) // signature is fine
	require.ErrorIs(t, got.ValidateExpiry(), ErrExpired)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, pub := newKeyPair(t)
	_, err := NewVerifier(pub, "").Verify("not.a.token")
	require.Error(t, err)
}

func TestLoadOrGenerateKeyPersists(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.pem")

	first, err := LoadOrGenerateKey(path)
	require.NoError(t, err)

	second, err := LoadOrGenerateKey(path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
