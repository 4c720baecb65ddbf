package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bodycheck/credential-service/config"
	"github.com/bodycheck/credential-service/internal/account/domain"
	"github.com/bodycheck/credential-service/internal/account/dto"
	autherror "github.com/bodycheck/credential-service/internal/errors"
	"github.com/bodycheck/credential-service/internal/password"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

type AccountService struct {
	store  domain.AccountStore
	tokens domain.TokenIssuer
	hasher password.Hasher
	cfg    *config.Config

	// Verified against when signin hits an unknown email, so the miss
	// costs the same as a wrong password.
	decoyHash string
}

func NewAccountService(store domain.AccountStore, tokens domain.TokenIssuer, hasher password.Hasher, cfg *config.Config) (*AccountService, error) {
	decoy, err := hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("failed to prepare decoy hash: %w", err)
	}

	return &AccountService{
		store:     store,
		tokens:    tokens,
		hasher:    hasher,
		cfg:       cfg,
		decoyHash: decoy,
	}, nil
}

func (s *AccountService) Signup(ctx context.Context, input dto.SignupInput) (*domain.Account, error) {
	email := normalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)

	if !emailPattern.MatchString(email) {
		return nil, autherror.ErrValidation
	}
	if len(input.Password) < s.cfg.MinPasswordLength {
		return nil, autherror.ErrValidation
	}
	if name == "" {
		return nil, autherror.ErrValidation
	}

	secretHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		ID:         uuid.NewString(),
		Email:      email,
		Name:       name,
		SecretHash: secretHash,
		CreatedAt:  time.Now(),
	}

	if err := s.store.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// Signin verifies credentials and issues a session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AccountService) Signin(ctx context.Context, input dto.SigninInput) (*dto.SessionOutput, error) {
	account, err := s.store.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}

	if account == nil {
		s.hasher.Verify(input.Password, s.decoyHash)
		return nil, autherror.ErrInvalidCredentials
	}

	if !s.hasher.Verify(input.Password, account.SecretHash) {
		return nil, autherror.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, err
	}

	return &dto.SessionOutput{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *AccountService) Profile(ctx context.Context, accountID string) (*dto.AccountOutput, error) {
	account, err := s.store.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if account == nil {
		return nil, autherror.ErrAccountNotFound
	}

	return &dto.AccountOutput{
		ID:    account.ID,
		Email: account.Email,
		Name:  account.Name,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
