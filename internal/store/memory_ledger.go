/**
 * @description
 * In-memory implementation of the Ledger. Accounts live for the process
 * session; there is no persistence by design. All reads hand out deep
 * copies and all mutations run under a single lock, so concurrent HTTP
 * requests cannot interleave a partial update.
 */
package store

import (
	"context"
	"sync"
	"time"

	"github.com/trustmark/designation-service/internal/domain"
)

// MemoryLedger is the in-memory Ledger implementation.
type MemoryLedger struct {
	mu       sync.RWMutex
	accounts []*domain.Account
	index    map[string]*domain.Account
	now      func() time.Time
}

// NewMemoryLedger creates an empty in-memory ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		index: make(map[string]*domain.Account),
		now:   time.Now,
	}
}

// ListAccounts returns deep copies of every account in insertion order.
func (l *MemoryLedger) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*domain.Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		out = append(out, a.Clone())
	}
	return out, nil
}

// GetAccount returns a deep copy of the matching account.
func (l *MemoryLedger) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	a, ok := l.index[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return a.Clone(), nil
}

// InsertAccount stores a copy of the given account at the end of the
// collection.
func (l *MemoryLedger) InsertAccount(ctx context.Context, account *domain.Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored := account.Clone()
	l.accounts = append(l.accounts, stored)
	l.index[stored.ID] = stored
	return nil
}

// AppendBeneficiary adds the beneficiary to the account's ordered collection,
// marks the account dirty and stamps LastUpdated.
func (l *MemoryLedger) AppendBeneficiary(ctx context.Context, accountID string, b domain.Beneficiary) (*domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.index[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	a.Beneficiaries = append(a.Beneficiaries, b)
	l.touch(a)
	return a.Clone(), nil
}

// ReplaceBeneficiary overwrites the mutable fields of the matching
// beneficiary. Position, ID and SSN are preserved.
func (l *MemoryLedger) ReplaceBeneficiary(ctx context.Context, accountID string, b domain.Beneficiary) (*domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.index[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	for i := range a.Beneficiaries {
		if a.Beneficiaries[i].ID != b.ID {
			continue
		}
		a.Beneficiaries[i].Name = b.Name
		a.Beneficiaries[i].Relationship = b.Relationship
		a.Beneficiaries[i].Percentage = b.Percentage
		a.Beneficiaries[i].IsPrimary = b.IsPrimary
		l.touch(a)
		return a.Clone(), nil
	}
	return nil, domain.ErrBeneficiaryNotFound
}

// RemoveBeneficiary deletes the matching beneficiary and returns it.
func (l *MemoryLedger) RemoveBeneficiary(ctx context.Context, accountID, beneficiaryID string) (domain.Beneficiary, *domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.index[accountID]
	if !ok {
		return domain.Beneficiary{}, nil, domain.ErrAccountNotFound
	}
	for i := range a.Beneficiaries {
		if a.Beneficiaries[i].ID != beneficiaryID {
			continue
		}
		removed := a.Beneficiaries[i]
		a.Beneficiaries = append(a.Beneficiaries[:i], a.Beneficiaries[i+1:]...)
		l.touch(a)
		return removed, a.Clone(), nil
	}
	return domain.Beneficiary{}, nil, domain.ErrBeneficiaryNotFound
}

// MarkSubmitted clears the dirty flag and records the submission time.
func (l *MemoryLedger) MarkSubmitted(ctx context.Context, accountID string, at time.Time) (*domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.index[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	a.HasUnsavedChanges = false
	a.LastSubmitted = &at
	return a.Clone(), nil
}

func (l *MemoryLedger) touch(a *domain.Account) {
	a.HasUnsavedChanges = true
	a.LastUpdated = l.now()
}
