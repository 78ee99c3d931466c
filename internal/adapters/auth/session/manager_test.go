package session

import (
	"context"
	"testing"
	"time"

	"brigadas-forestales/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueVerify_RoundTrip(t *testing.T) {
	m, err := NewManager(Config{Secret: "s3cret", TTL: time.Hour})
	require.NoError(t, err)

	s, err := m.Issue(context.Background(), auth.Claims{UserID: "1001", Nombre: "ana"})
	require.NoError(t, err)
	require.NotEmpty(t, s.Token)

	c, err := m.Verify(context.Background(), s.Token)
	require.NoError(t, err)
	assert.Equal(t, "1001", c.UserID)
	assert.Equal(t, "ana", c.Nombre)
	assert.False(t, c.Admin)
}

func TestManager_RejectsExpiredToken(t *testing.T) {
	m, err := NewManager(Config{Secret: "s3cret", TTL: time.Minute})
	require.NoError(t, err)

	base := time.Date(2025, 5, 5, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }
	s, err := m.Issue(context.Background(), auth.Claims{UserID: "1001"})
	require.NoError(t, err)

	m.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err = m.Verify(context.Background(), s.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_RejectsForeignSignature(t *testing.T) {
	a, _ := NewManager(Config{Secret: "a"})
	b, _ := NewManager(Config{Secret: "b"})

	s, err := a.Issue(context.Background(), auth.Claims{UserID: "1001"})
	require.NoError(t, err)

	_, err = b.Verify(context.Background(), s.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Validation(t *testing.T) {
	_, err := NewManager(Config{Secret: "  "})
	assert.ErrorIs(t, err, ErrSecretRequired)

	m, _ := NewManager(Config{Secret: "x"})
	_, err = m.Issue(context.Background(), auth.Claims{})
	assert.Error(t, err)

	_, err = m.Verify(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}
