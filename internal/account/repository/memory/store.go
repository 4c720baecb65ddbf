// Package memory provides an in-process AccountStore. It backs the
// handler tests and doubles as the reference for plugging alternative
// account backends behind the same interface.
package memory

import (
	"context"
	"sync"

	"github.com/bodycheck/credential-service/internal/account/domain"
	autherror "github.com/bodycheck/credential-service/internal/errors"
)

type Store struct {
	mu      sync.RWMutex
	byID    map[string]domain.Account
	byEmail map[string]string // email -> id
}

func NewStore() *Store {
	return &Store{
		byID:    make(map[string]domain.Account),
		byEmail: make(map[string]string),
	}
}

// Create stores the account. The check-and-insert happens under one lock
// so concurrent calls for the same email cannot both succeed.
func (s *Store) Create(_ context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[account.Email]; exists {
		return autherror.ErrDuplicateAccount
	}

	s.byID[account.ID] = *account
	s.byEmail[account.Email] = account.ID

	return nil
}

func (s *Store) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, nil
	}

	account := s.byID[id]

	return &account, nil
}

func (s *Store) GetByID(_ context.Context, id string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.byID[id]
	if !ok {
		return nil, nil
	}

	return &account, nil
}

var _ domain.AccountStore = (*Store)(nil)
