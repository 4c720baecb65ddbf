package domain

//go:generate mockgen -destination=../../mocks/mock_account_store.go -package=mocks github.com/bodycheck/credential-service/internal/account/domain AccountStore
//go:generate mockgen -destination=../../mocks/mock_token_issuer.go -package=mocks github.com/bodycheck/credential-service/internal/account/domain TokenIssuer

import (
	"context"
	"time"
)

// AccountStore persists accounts. Create must enforce email uniqueness
// atomically at the storage layer so concurrent signups cannot race past
// the check. GetByEmail and GetByID return (nil, nil) when no account
// matches.
type AccountStore interface {
	Create(ctx context.Context, account *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
}

// TokenIssuer issues and validates stateless session tokens.
type TokenIssuer interface {
	Issue(accountID string) (token string, expiresAt time.Time, err error)
	Validate(token string) (accountID string, err error)
}
