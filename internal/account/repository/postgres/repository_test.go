package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodycheck/credential-service/internal/account/domain"
	repo "github.com/bodycheck/credential-service/internal/account/repository/postgres"
	autherror "github.com/bodycheck/credential-service/internal/errors"
)

var accountColumns = []string{"id", "email", "name", "secret_hash", "created_at"}

// TestCreate covers the Create repository method.
func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()

	r := repo.NewAccountRepository(mock)
	account := &domain.Account{
		ID:         "account-123",
		Email:      "new@example.com",
		Name:       "New User",
		SecretHash: "new-hash",
		CreatedAt:  time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(account.ID, account.Email, account.Name, account.SecretHash, account.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.Create(ctx, account)
		assert.NoError(t, err)
	})

	t.Run("duplicate email maps unique violation", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(account.ID, account.Email, account.Name, account.SecretHash, account.CreatedAt).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		err := r.Create(ctx, account)
		assert.ErrorIs(t, err, autherror.ErrDuplicateAccount)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(account.ID, account.Email, account.Name, account.SecretHash, account.CreatedAt).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Create(ctx, account)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, autherror.ErrDuplicateAccount)
	})
}

// TestGetByEmail covers the GetByEmail repository method.
func TestGetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()

	r := repo.NewAccountRepository(mock)
	accountEmail := "test@example.com"

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(accountEmail).
			WillReturnRows(pgxmock.NewRows(accountColumns).
				AddRow("account-123", accountEmail, "Test User", "hash", time.Now()))

		account, err := r.GetByEmail(ctx, accountEmail)
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, "account-123", account.ID)
		assert.Equal(t, accountEmail, account.Email)
	})

	t.Run("not found returns nil, nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(accountEmail).
			WillReturnError(pgx.ErrNoRows)

		account, err := r.GetByEmail(ctx, accountEmail)
		require.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(accountEmail).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, accountEmail)
		assert.Error(t, err)
	})
}

// TestGetByID covers the GetByID repository method.
func TestGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()

	r := repo.NewAccountRepository(mock)

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("account-123").
			WillReturnRows(pgxmock.NewRows(accountColumns).
				AddRow("account-123", "test@example.com", "Test User", "hash", time.Now()))

		account, err := r.GetByID(ctx, "account-123")
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, "account-123", account.ID)
	})

	t.Run("not found returns nil, nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("missing-123").
			WillReturnError(pgx.ErrNoRows)

		account, err := r.GetByID(ctx, "missing-123")
		require.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("account-123").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByID(ctx, "account-123")
		assert.Error(t, err)
	})
}
