package services

import (
	"context"
	"errors"
	"testing"

	"elsabor_server/lib"
	"elsabor_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCredentialStore struct {
	findByUsername func(ctx context.Context, username string) (*tables.AdminCredential, error)
	insert         func(ctx context.Context, cred *tables.AdminCredential) error
}

func (s *stubCredentialStore) FindByUsername(ctx context.Context, username string) (*tables.AdminCredential, error) {
	if s.findByUsername != nil {
		return s.findByUsername(ctx, username)
	}
	return nil, nil
}

func (s *stubCredentialStore) Insert(ctx context.Context, cred *tables.AdminCredential) error {
	if s.insert != nil {
		return s.insert(ctx, cred)
	}
	return nil
}

func newTestAuthService(creds credentialStore) *AuthService {
	return &AuthService{
		logger: gecho.NewDefaultLogger(),
		creds:  creds,
	}
}

func missingTableErr() error {
	return &pgconn.PgError{Code: "42P01", Message: `relation "admin_credentials" does not exist`}
}

func TestLoginFallbackWhenTableMissing(t *testing.T) {
	as := newTestAuthService(&stubCredentialStore{
		findByUsername: func(ctx context.Context, username string) (*tables.AdminCredential, error) {
			return nil, missingTableErr()
		},
	})

	user, err := as.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "admin", user.Role)

	_, err = as.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, lib.ErrInvalidCredentials)
}

func TestLoginFallbackWhenNoRow(t *testing.T) {
	as := newTestAuthService(&stubCredentialStore{})

	user, err := as.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	_, err = as.Login(context.Background(), "someone", "admin123")
	assert.ErrorIs(t, err, lib.ErrInvalidCredentials)
}

func TestLoginStoredRow(t *testing.T) {
	as := newTestAuthService(&stubCredentialStore{
		findByUsername: func(ctx context.Context, username string) (*tables.AdminCredential, error) {
			return &tables.AdminCredential{
				Username:          "admin",
				Password:          "plaintext-secret",
				EncryptedPassword: lib.EncodePassword("encoded-secret"),
			}, nil
		},
	})

	// plaintext column match
	user, err := as.Login(context.Background(), "admin", "plaintext-secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	// encoded column match
	user, err = as.Login(context.Background(), "admin", "encoded-secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	_, err = as.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, lib.ErrInvalidCredentials)
}

func TestLoginStoreErrorSurfaces(t *testing.T) {
	boom := errors.New("connection refused")
	as := newTestAuthService(&stubCredentialStore{
		findByUsername: func(ctx context.Context, username string) (*tables.AdminCredential, error) {
			return nil, boom
		},
	})

	_, err := as.Login(context.Background(), "admin", "admin123")
	assert.ErrorIs(t, err, boom)
}

func TestVerifyTokenService(t *testing.T) {
	as := newTestAuthService(&stubCredentialStore{})

	user, ok := as.VerifyToken(lib.AdminToken)
	require.True(t, ok)
	assert.Equal(t, "admin", user.Username)

	_, ok = as.VerifyToken("wrong")
	assert.False(t, ok)
}

func TestEnsureAdminCredential(t *testing.T) {
	t.Run("inserts when absent", func(t *testing.T) {
		var inserted *tables.AdminCredential
		as := newTestAuthService(&stubCredentialStore{
			insert: func(ctx context.Context, cred *tables.AdminCredential) error {
				inserted = cred
				return nil
			},
		})

		require.NoError(t, as.EnsureAdminCredential(context.Background()))
		require.NotNil(t, inserted)
		assert.Equal(t, "admin", inserted.Username)
		assert.Equal(t, lib.EncodePassword("admin123"), inserted.EncryptedPassword)
	})

	t.Run("no-op when present", func(t *testing.T) {
		as := newTestAuthService(&stubCredentialStore{
			findByUsername: func(ctx context.Context, username string) (*tables.AdminCredential, error) {
				return &tables.AdminCredential{Username: "admin"}, nil
			},
			insert: func(ctx context.Context, cred *tables.AdminCredential) error {
				t.Fatal("insert should not be called")
				return nil
			},
		})

		require.NoError(t, as.EnsureAdminCredential(context.Background()))
	})

	t.Run("skips when table missing", func(t *testing.T) {
		as := newTestAuthService(&stubCredentialStore{
			findByUsername: func(ctx context.Context, username string) (*tables.AdminCredential, error) {
				return nil, missingTableErr()
			},
		})

		require.NoError(t, as.EnsureAdminCredential(context.Background()))
	})
}
