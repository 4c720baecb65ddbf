package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bodycheck/credential-service/internal/account/domain"
	autherror "github.com/bodycheck/credential-service/internal/errors"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type AccountRepository struct {
	db DB
}

func NewAccountRepository(db DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts the account. Email uniqueness is enforced by the unique
// index on accounts(email); a violation surfaces as ErrDuplicateAccount,
// which keeps concurrent signups for the same email atomic at the
// storage layer.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO accounts (id, email, name, secret_hash, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `, account.ID, account.Email, account.Name, account.SecretHash, account.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return autherror.ErrDuplicateAccount
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT id, email, name, secret_hash, created_at
		FROM accounts
		WHERE email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email)

	var account domain.Account
	err := row.Scan(&account.ID, &account.Email, &account.Name, &account.SecretHash, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return &account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `
		SELECT id, email, name, secret_hash, created_at
		FROM accounts
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var account domain.Account
	err := row.Scan(&account.ID, &account.Email, &account.Name, &account.SecretHash, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return &account, nil
}

var _ domain.AccountStore = (*AccountRepository)(nil)
