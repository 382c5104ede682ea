// Package store is the in-memory mirror of the signed-in user's
// transactions and categories. It never talks to the network itself:
// callers perform the gateway call and push results in after success, so
// the mirror stays within one round trip of backend state.
package store

import (
	"sync"

	"zenfinance/internal/models"
)

// DomainStore holds the current user's collections. Mutations are atomic
// under a single mutex, matching the single-writer-at-a-time discipline the
// rendering model expects. Results may arrive in any order from concurrent
// gateway calls; nothing here assumes the last AddTransaction corresponds
// to the most recent user action.
type DomainStore struct {
	mu           sync.Mutex
	transactions []models.Transaction
	categories   []models.Category
}

// New creates an empty DomainStore.
func New() *DomainStore {
	return &DomainStore{}
}

// SetTransactions replaces the whole transaction collection. Callers are
// expected to request backend-sorted newest-first data; the store imposes
// no ordering of its own.
func (s *DomainStore) SetTransactions(txs []models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append([]models.Transaction(nil), txs...)
}

// AddTransaction prepends tx, maintaining the newest-first invariant
// incrementally rather than by re-sorting.
func (s *DomainStore) AddTransaction(tx models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append([]models.Transaction{tx}, s.transactions...)
}

// RemoveTransaction filters out the transaction with the given id. Removing
// an absent id is a no-op. This succeeds regardless of whether the backend
// delete went through: once the user has confirmed deletion, the local view
// follows their intent.
func (s *DomainStore) RemoveTransaction(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.transactions[:0]
	for _, tx := range s.transactions {
		if tx.ID != id {
			out = append(out, tx)
		}
	}
	s.transactions = out
}

// SetCategories replaces the whole category collection.
func (s *DomainStore) SetCategories(cats []models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]models.Category(nil), cats...)
}

// ClearUserData empties both collections. Called on sign-out before the
// sign-out network call resolves, so one user's data can never render under
// another session.
func (s *DomainStore) ClearUserData() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = nil
	s.categories = nil
}

// Transactions returns a snapshot of the transaction collection.
func (s *DomainStore) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Transaction(nil), s.transactions...)
}

// Categories returns a snapshot of the category collection.
func (s *DomainStore) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Category(nil), s.categories...)
}
