package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/roster/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "roster-account"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newPair(t *testing.T) (*jwtx.HS256Signer, *jwtx.HS256Verifier) {
	t.Helper()
	signer, err := jwtx.NewHS256Signer(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewHS256Verifier(testSecret, exampleIssuer)
	require.NoError(t, err)
	return signer, verifier
}

func TestHS256SignAndVerify(t *testing.T) {
	signer, verifier := newPair(t)
	require.Equal(t, "HS256", signer.Alg())

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	claims := jwtx.NewClaims("user-123", exampleIssuer, jwtx.DefaultTokenTTL, now)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := verifier.Verify(token, now.Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, "user-123", parsed.Subject)
	require.Equal(t, exampleIssuer, parsed.Issuer)
	require.Equal(t, claims.ID, parsed.ID)
	require.Equal(t, claims.ExpiresAt.Unix(), parsed.ExpiresAt.Unix())
}

func TestHS256VerifyExpiry(t *testing.T) {
	signer, verifier := newPair(t)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	token, err := signer.Sign(jwtx.NewClaims("user-123", exampleIssuer, jwtx.DefaultTokenTTL, now))
	require.NoError(t, err)

	_, err = verifier.Verify(token, now.Add(jwtx.DefaultTokenTTL-time.Second))
	require.NoError(t, err)

	_, err = verifier.Verify(token, now.Add(jwtx.DefaultTokenTTL))
	require.ErrorIs(t, err, jwtx.ErrExpired)
	require.True(t, jwtx.IsExpired(err))

	_, err = verifier.Verify(token, now.Add(30*24*time.Hour))
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestHS256VerifyRejectsTampering(t *testing.T) {
	signer, verifier := newPair(t)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	token, err := signer.Sign(jwtx.NewClaims("user-123", exampleIssuer, time.Hour, now))
	require.NoError(t, err)

	for i := range len(token) {
		if token[i] == '.' {
			continue
		}
		b := []byte(token)
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}

		_, err := verifier.Verify(string(b), now)
		require.Error(t, err, "tampered byte %d still verified", i)
		require.False(t, jwtx.IsExpired(err))
	}
}

func TestHS256VerifyWrongSecret(t *testing.T) {
	signer, _ := newPair(t)
	other, err := jwtx.NewHS256Verifier([]byte("a-completely-different-secret"), exampleIssuer)
	require.NoError(t, err)

	now := time.Now().UTC()
	token, err := signer.Sign(jwtx.NewClaims("user-123", exampleIssuer, time.Hour, now))
	require.NoError(t, err)

	_, err = other.Verify(token, now)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestHS256VerifyWrongIssuer(t *testing.T) {
	signer, verifier := newPair(t)

	now := time.Now().UTC()
	token, err := signer.Sign(jwtx.NewClaims("user-123", "someone-else", time.Hour, now))
	require.NoError(t, err)

	_, err = verifier.Verify(token, now)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestHS256VerifyRejectsOtherAlgorithms(t *testing.T) {
	_, verifier := newPair(t)
	now := time.Now().UTC()
	claims := jwtx.NewClaims("user-123", exampleIssuer, time.Hour, now)

	hs384, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString(testSecret)
	require.NoError(t, err)
	_, err = verifier.Verify(hs384, now)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = verifier.Verify(none, now)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestHS256VerifyMalformed(t *testing.T) {
	_, verifier := newPair(t)

	for _, token := range []string{"", "abc", "a.b", "not.a.jwt"} {
		_, err := verifier.Verify(token, time.Now())
		require.ErrorIs(t, err, jwtx.ErrMalformed, "token %q", token)
	}
}

func TestHS256EmptySecret(t *testing.T) {
	_, err := jwtx.NewHS256Signer(nil)
	require.ErrorIs(t, err, jwtx.ErrEmptySecret)

	_, err = jwtx.NewHS256Verifier([]byte{}, exampleIssuer)
	require.ErrorIs(t, err, jwtx.ErrEmptySecret)
}
