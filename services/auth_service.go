package services

import (
	"context"

	"elsabor_server/database"
	"elsabor_server/lib"
	"elsabor_server/structs"
	"elsabor_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// Hardcoded fallback credential pair, used when the admin_credentials table is
// absent or holds no row for the username.
const (
	fallbackUsername = "admin"
	fallbackPassword = "admin123"
)

// credentialStore is the slice of the table store the auth service needs.
type credentialStore interface {
	FindByUsername(ctx context.Context, username string) (*tables.AdminCredential, error)
	Insert(ctx context.Context, cred *tables.AdminCredential) error
}

type AuthService struct {
	logger *gecho.Logger
	creds  credentialStore
}

func NewAuthService(logger *gecho.Logger, db *database.DB) *AuthService {
	return &AuthService{
		logger: logger,
		creds:  &bunCredentialStore{db: db},
	}
}

// Login checks the supplied pair against the stored credential row, or against
// the hardcoded fallback when no row can be read. A stored row matches on the
// plaintext password or on its reversed-base64 encoded form. On success the
// caller hands out lib.AdminToken; there is no per-user token.
func (as *AuthService) Login(ctx context.Context, username, password string) (*structs.AdminUser, error) {
	username = lib.SanitizeString(username, true, true)

	cred, err := as.creds.FindByUsername(ctx, username)
	if err != nil {
		if !database.IsMissingTable(err) {
			as.logger.Error("Credential lookup failed", gecho.Field("error", err))
			return nil, err
		}
		as.logger.Warn("Credentials table missing, using fallback credential", gecho.Field("error", err))
		cred = nil
	}

	if cred == nil {
		if username == fallbackUsername && password == fallbackPassword {
			return &structs.AdminUser{Username: username, Role: "admin"}, nil
		}
		return nil, lib.ErrInvalidCredentials
	}

	if password == cred.Password || lib.EncodePassword(password) == cred.EncryptedPassword {
		return &structs.AdminUser{Username: cred.Username, Role: "admin"}, nil
	}

	as.logger.Debug("Invalid password attempt", gecho.Field("username", username))
	return nil, lib.ErrInvalidCredentials
}

// VerifyToken validates a bearer token. Valid iff it equals the single literal
// produced by login.
func (as *AuthService) VerifyToken(token string) (*structs.AdminUser, bool) {
	if !lib.VerifyToken(token) {
		return nil, false
	}
	return &structs.AdminUser{Username: fallbackUsername, Role: "admin"}, true
}

// EnsureAdminCredential lazily creates the admin credential row at startup.
// Failures are logged by the caller, never fatal.
func (as *AuthService) EnsureAdminCredential(ctx context.Context) error {
	cred, err := as.creds.FindByUsername(ctx, fallbackUsername)
	if err != nil {
		if database.IsMissingTable(err) {
			as.logger.Warn("Credentials table missing, skipping admin bootstrap", gecho.Field("error", err))
			return nil
		}
		return err
	}
	if cred != nil {
		return nil
	}

	newCred := &tables.AdminCredential{
		Username:          fallbackUsername,
		Password:          fallbackPassword,
		EncryptedPassword: lib.EncodePassword(fallbackPassword),
	}
	if err := as.creds.Insert(ctx, newCred); err != nil {
		// another instance may have won the race
		if database.IsUniqueViolation(err) {
			return nil
		}
		return err
	}

	as.logger.Info("Admin credential created", gecho.Field("username", fallbackUsername))
	return nil
}

// bunCredentialStore backs credentialStore with the table-query layer.
type bunCredentialStore struct {
	db *database.DB
}

func (s *bunCredentialStore) FindByUsername(ctx context.Context, username string) (*tables.AdminCredential, error) {
	return database.Query[tables.AdminCredential](s.db).Where("username", username).First(ctx)
}

func (s *bunCredentialStore) Insert(ctx context.Context, cred *tables.AdminCredential) error {
	_, err := database.Query[tables.AdminCredential](s.db).Insert(ctx, cred)
	return err
}
