package accounts

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/lfanzott/schulmanager/internal/common"
	"github.com/lfanzott/schulmanager/internal/csvx"
	"github.com/lfanzott/schulmanager/internal/encoding"
)

// ReservedName is the username reserved for the built-in administrator; it
// cannot be taken through self-registration.
const ReservedName = "admin"

// Service wraps a Repository with account policy: name validation, the
// reserved admin name, credential hashing and the deliberately ambiguous
// authentication error.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// hashPassword renders the stored form of a password: SHA256 as hex.
func hashPassword(password string) (string, error) {
	digest, err := encoding.Hash(password, encoding.SHA256)
	if err != nil {
		return "", err
	}
	return encoding.ToHex(digest), nil
}

// validateName rejects names that would corrupt the record format or are
// policy-reserved.
func validateName(name string) error {
	if name == "" || strings.Contains(name, csvx.Delimiter) {
		return fmt.Errorf("username %q: %w", name, common.ErrMalformedRecord)
	}
	if strings.EqualFold(name, ReservedName) {
		return fmt.Errorf("username %q: %w", name, common.ErrReservedUsername)
	}
	return nil
}

func (s *Service) Exists(ctx context.Context, username string) (bool, error) {
	return s.repo.Exists(ctx, username)
}

// Register creates a new account with the given role. The reserved admin
// name is rejected regardless of whether an admin account exists yet.
func (s *Service) Register(ctx context.Context, username, password string, role Role) error {
	if err := validateName(username); err != nil {
		return err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	return s.repo.Create(ctx, Account{Name: username, Role: role, PasswordHash: hash})
}

// Authenticate hashes the supplied password and compares it to the stored
// record. Unknown user and wrong password both yield ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (Role, error) {
	account, err := s.repo.FindByName(ctx, username)
	if err != nil {
		return "", err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return "", err
	}

	if account == nil ||
		subtle.ConstantTimeCompare([]byte(account.PasswordHash), []byte(hash)) != 1 {
		return "", common.ErrInvalidCredentials
	}
	return account.Role, nil
}

// ListAll returns every account in file order.
func (s *Service) ListAll(ctx context.Context) ([]Account, error) {
	return s.repo.LoadAll(ctx)
}

// Delete removes username's account. Deleting an unknown user succeeds;
// deleting the actor's own account does not.
func (s *Service) Delete(ctx context.Context, actor, username string) error {
	if strings.EqualFold(actor, username) {
		return common.ErrSelfDelete
	}
	return s.repo.Delete(ctx, username)
}

// Rename changes an account's username, preserving role and password hash.
func (s *Service) Rename(ctx context.Context, oldName, newName string) error {
	if err := validateName(newName); err != nil {
		return err
	}

	taken, err := s.repo.Exists(ctx, newName)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("user %q: %w", newName, common.ErrAlreadyExists)
	}

	return s.repo.Rename(ctx, oldName, newName)
}

// ChangePassword replaces the stored hash for username.
func (s *Service) ChangePassword(ctx context.Context, username, newPassword string) error {
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, username, hash)
}

// EnsureAdmin seeds the reserved admin account with the given password when
// no such account exists yet. Returns true when the account was created.
func (s *Service) EnsureAdmin(ctx context.Context, password string) (bool, error) {
	exists, err := s.repo.Exists(ctx, ReservedName)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	hash, err := hashPassword(password)
	if err != nil {
		return false, err
	}
	if err := s.repo.Create(ctx, Account{Name: ReservedName, Role: RoleAdmin, PasswordHash: hash}); err != nil {
		return false, err
	}
	return true, nil
}

// ChangeRole replaces the stored role for username.
func (s *Service) ChangeRole(ctx context.Context, username string, role Role) error {
	return s.repo.UpdateRole(ctx, username, role)
}
