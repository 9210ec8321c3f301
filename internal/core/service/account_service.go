package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hazellab/catalog-api/internal/core/domain"
	"github.com/hazellab/catalog-api/internal/core/ports"
)

// AccountService implements the account lifecycle and the login flow.
// It is stateless between calls; all mutable state lives in the repository,
// whose unique indexes are the only guard against duplicate email/national id.
// Concurrent updates to the same account are not coordinated here: the store's
// consistency (last write wins for Mongo replaces) decides the outcome.
type AccountService struct {
	repo   ports.AccountRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, hasher: hasher, logger: logger}
}

// Create validates the input, applies defaults, hashes the password and
// persists the account. Uniqueness conflicts surface as domain.ErrAccountExists
// from the repository.
func (s *AccountService) Create(ctx context.Context, input ports.AccountInput) (*domain.Account, error) {
	if input.Password == "" {
		return nil, domain.ErrPasswordRequired
	}
	if input.NationalID == "" {
		return nil, domain.ErrNationalIDRequired
	}
	if !allowedEmail(input.Email) {
		return nil, domain.ErrEmailDomain
	}

	role := input.Role
	if role == "" {
		role = domain.RoleClient
	}
	status := input.Status
	if status == "" {
		status = domain.StatusActive
	}
	createdAt := input.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Username:     input.Username,
		LastName:     input.LastName,
		Email:        input.Email,
		NationalID:   input.NationalID,
		PasswordHash: digest,
		Role:         role,
		Status:       status,
		CreatedAt:    createdAt,
		Region:       input.Region,
		Commune:      input.Commune,
		BirthDate:    input.BirthDate,
		Address:      input.Address,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("account_id", created.ID).Str("role", created.Role).Msg("account created")
	return created, nil
}

func (s *AccountService) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}

// Update replaces the whole profile from the input. Every field overwrites
// the stored value, empty strings included: a partial payload nulls the
// omitted fields. This mirrors the PUT full-replace contract of the original
// API and is covered as a known sharp edge in the tests. ID and CreatedAt are
// never touched. The password is re-hashed only when the input carries a
// non-empty password that differs from the current one.
func (s *AccountService) Update(ctx context.Context, id string, input ports.AccountInput) (*domain.Account, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Username = input.Username
	existing.LastName = input.LastName
	existing.Email = input.Email
	existing.NationalID = input.NationalID
	existing.Role = input.Role
	existing.Status = input.Status
	existing.BirthDate = input.BirthDate
	existing.Region = input.Region
	existing.Commune = input.Commune
	existing.Address = input.Address

	if input.Email != "" && !allowedEmail(input.Email) {
		return nil, domain.ErrEmailDomain
	}

	if input.Password != "" && !s.hasher.Matches(input.Password, existing.PasswordHash) {
		digest, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		existing.PasswordHash = digest
	}

	return s.repo.Update(ctx, existing)
}

// Delete removes an account after verifying it exists: deleting an unknown id
// is an error, not a no-op.
func (s *AccountService) Delete(ctx context.Context, id string) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrAccountNotFound
	}
	return s.repo.DeleteByID(ctx, id)
}

func (s *AccountService) List(ctx context.Context) ([]*domain.Account, error) {
	return s.repo.List(ctx)
}

// Authenticate runs the login flow: resolve by email, verify the password
// against the stored digest, then gate on the literal "activo" status. The
// full record is returned; stripping the digest before exposure is the
// caller's job (the hash field is never serialized).
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !s.hasher.Matches(password, account.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	if account.Status != domain.StatusActive {
		return nil, domain.ErrAccountInactive
	}

	s.logger.Info().Str("account_id", account.ID).Str("role", account.Role).Msg("login succeeded")
	return account, nil
}

func (s *AccountService) SearchByUsername(ctx context.Context, fragment string) ([]*domain.Account, error) {
	return s.repo.SearchByUsername(ctx, fragment)
}

func (s *AccountService) FindByRole(ctx context.Context, role string) ([]*domain.Account, error) {
	return s.repo.FindByRole(ctx, role)
}

func (s *AccountService) FindByStatus(ctx context.Context, status string) ([]*domain.Account, error) {
	return s.repo.FindByStatus(ctx, status)
}

// allowedEmail enforces the institutional allow-list. It is a closed,
// case-sensitive suffix match, not a format validator: a malformed address
// with an allowed suffix passes.
func allowedEmail(email string) bool {
	if email == "" {
		return false
	}
	return strings.HasSuffix(email, "@duoc.cl") ||
		strings.HasSuffix(email, "@profesor.duoc.cl") ||
		strings.HasSuffix(email, "@gmail.com")
}
