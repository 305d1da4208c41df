package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/cryptonote/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/cryptonote/internal/common"
	"github.com/dmitrijs2005/cryptonote/internal/cryptox"
	"github.com/dmitrijs2005/cryptonote/internal/keyvault"
	"github.com/dmitrijs2005/cryptonote/internal/logging"
)

// VerifierKey is the settings key holding the sealed verifier.
const VerifierKey = "user_hash"

// DefaultMinPasswordLength is the shortest password Register accepts.
const DefaultMinPasswordLength = 8

// RegistrationState is Unregistered until a verifier is stored.
type RegistrationState int

const (
	Unregistered RegistrationState = iota
	Registered
)

func (s RegistrationState) String() string {
	switch s {
	case Unregistered:
		return "unregistered"
	case Registered:
		return "registered"
	default:
		return fmt.Sprintf("RegistrationState(%d)", int(s))
	}
}

// KeyVault is the subset of keyvault.Vault used by the services.
type KeyVault interface {
	GetOrCreateKey(ctx context.Context, alias string) (*keyvault.Key, error)
	EncryptUnder(ctx context.Context, alias string, plaintext []byte) (string, error)
	DecryptUnder(ctx context.Context, alias string, payload string) ([]byte, error)
}

// AuthService defines the credential operations of the CLI.
//
// Contract:
//   - State/IsRegistered: read the registration state from the settings store.
//   - Register: store a new verifier; only valid while Unregistered.
//   - Authenticate: check a password against the stored verifier. A wrong
//     password is (false, nil); a tampered verifier is ErrCredentialCorrupted.
type AuthService interface {
	State(ctx context.Context) (RegistrationState, error)
	IsRegistered(ctx context.Context) (bool, error)
	Register(ctx context.Context, password []byte) error
	Authenticate(ctx context.Context, password []byte) (bool, error)
}

// AuthOption customizes an AuthService.
type AuthOption func(*authService)

// WithMinPasswordLength overrides DefaultMinPasswordLength.
func WithMinPasswordLength(n int) AuthOption {
	return func(a *authService) { a.minPasswordLength = n }
}

type authService struct {
	db     *sql.DB
	vault  KeyVault
	params cryptox.Params
	hasher *cryptox.PasswordHasher
	log    logging.Logger

	minPasswordLength int
}

// NewAuthService builds an AuthService over the settings table in db. rand
// supplies salts.
func NewAuthService(db *sql.DB, vault KeyVault, params cryptox.Params, rand io.Reader, log logging.Logger, opts ...AuthOption) (AuthService, error) {
	hasher, err := cryptox.NewPasswordHasher(params, rand)
	if err != nil {
		return nil, err
	}
	a := &authService{
		db:                db,
		vault:             vault,
		params:            params,
		hasher:            hasher,
		log:               log,
		minPasswordLength: DefaultMinPasswordLength,
	}
	for _, o := range opts {
		o(a)
	}
	return a, nil
}

func (a *authService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(a.db)
}

func (a *authService) loadSealed(ctx context.Context) ([]byte, error) {
	sealed, err := a.getMetadataRepo().Get(ctx, VerifierKey)
	if err != nil {
		return nil, fmt.Errorf("load verifier: %w", err)
	}
	return sealed, nil
}

func (a *authService) State(ctx context.Context) (RegistrationState, error) {
	sealed, err := a.loadSealed(ctx)
	if err != nil {
		return Unregistered, err
	}
	if len(sealed) == 0 {
		return Unregistered, nil
	}
	return Registered, nil
}

func (a *authService) IsRegistered(ctx context.Context) (bool, error) {
	s, err := a.State(ctx)
	return s == Registered, err
}

func (a *authService) checkLength(password []byte) error {
	if len([]rune(string(password))) < a.minPasswordLength {
		return fmt.Errorf("%w: minimum is %d characters", ErrPasswordTooShort, a.minPasswordLength)
	}
	return nil
}

// Register hashes password, seals the verifier under the integrity key and
// makes sure the note key exists before persisting anything. A failure at any
// step leaves the installation Unregistered.
func (a *authService) Register(ctx context.Context, password []byte) error {
	if err := a.checkLength(password); err != nil {
		return err
	}

	state, err := a.State(ctx)
	if err != nil {
		return err
	}
	if state == Registered {
		return ErrAlreadyRegistered
	}

	verifier, err := a.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	defer common.WipeByteArray(verifier)

	sealed, err := a.vault.EncryptUnder(ctx, a.params.IntegrityKeyAlias, []byte(verifier.String()))
	if err != nil {
		return fmt.Errorf("seal verifier: %w", err)
	}

	if _, err := a.vault.GetOrCreateKey(ctx, a.params.NoteKeyAlias); err != nil {
		return fmt.Errorf("note key: %w", err)
	}

	if err := a.getMetadataRepo().Create(ctx, VerifierKey, []byte(sealed)); err != nil {
		if errors.Is(err, metadata.ErrValueExists) {
			return ErrAlreadyRegistered
		}
		return fmt.Errorf("store verifier: %w", err)
	}

	a.log.Info(ctx, "registered")
	return nil
}

func (a *authService) Authenticate(ctx context.Context, password []byte) (bool, error) {
	if err := a.checkLength(password); err != nil {
		return false, err
	}

	sealed, err := a.loadSealed(ctx)
	if err != nil {
		return false, err
	}
	if len(sealed) == 0 {
		return false, ErrNotRegistered
	}

	encoded, err := a.vault.DecryptUnder(ctx, a.params.IntegrityKeyAlias, string(sealed))
	switch {
	case err == nil:
	case errors.Is(err, keyvault.ErrKeyNotFound):
		a.log.Error(ctx, "integrity key missing while a verifier is stored")
		return false, ErrCredentialCorrupted
	case errors.Is(err, cryptox.ErrAuthenticationFailed), errors.Is(err, cryptox.ErrMalformedPayload):
		a.log.Error(ctx, "sealed verifier failed to open", "error", err)
		return false, ErrCredentialCorrupted
	default:
		return false, fmt.Errorf("integrity key: %w", err)
	}
	defer common.WipeByteArray(encoded)

	verifier, err := a.hasher.DecodeVerifier(string(encoded))
	if err != nil {
		a.log.Error(ctx, "stored verifier is malformed", "error", err)
		return false, fmt.Errorf("%w: %w", ErrCredentialCorrupted, err)
	}
	defer common.WipeByteArray(verifier)

	ok, err := a.hasher.Verify(password, verifier)
	if err != nil {
		a.log.Error(ctx, "verifier check failed", "error", err)
		return false, fmt.Errorf("%w: %w", ErrCredentialCorrupted, err)
	}
	if !ok {
		a.log.Warn(ctx, "login failed")
		return false, nil
	}

	a.log.Info(ctx, "login succeeded")
	return true, nil
}
