package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/roster/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "roster-account",
		},
	}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("roster-account"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		err := c.ValidateIssuer("someone-else")
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})
}

func TestValidateSubject(t *testing.T) {
	require.ErrorIs(t, (&jwtx.Claims{}).ValidateSubject(), jwtx.ErrInvalidClaim)

	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "01J0000000000000000000000A"}}
	require.NoError(t, c.ValidateSubject())
}

func TestValidateExpiry(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		exp  *jwt.NumericDate
		nbf  *jwt.NumericDate
		want error
	}{
		{"valid", jwt.NewNumericDate(now.Add(time.Hour)), jwt.NewNumericDate(now.Add(-time.Minute)), nil},
		{"expired", jwt.NewNumericDate(now.Add(-time.Second)), nil, jwtx.ErrExpired},
		{"expires exactly now", jwt.NewNumericDate(now), nil, jwtx.ErrExpired},
		{"not yet valid", jwt.NewNumericDate(now.Add(time.Hour)), jwt.NewNumericDate(now.Add(time.Minute)), jwtx.ErrNotYetValid},
		{"missing exp", nil, nil, jwtx.ErrInvalidClaim},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: tt.exp, NotBefore: tt.nbf}}
			err := c.ValidateExpiry(now)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewClaims(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := jwtx.NewClaims("user-1", "roster-account", jwtx.DefaultTokenTTL, now)

	require.Equal(t, "user-1", c.Subject)
	require.Equal(t, "roster-account", c.Issuer)
	require.Equal(t, now, c.IssuedAt.Time)
	require.Equal(t, now.Add(7*24*time.Hour), c.ExpiresAt.Time)
	require.NotEmpty(t, c.ID)
	require.NotEqual(t, c.ID, jwtx.NewJTI())
}
