/**
 * @description
 * This file defines the interfaces for the data access layer. The service
 * layer depends on these contracts, not on the in-memory implementations,
 * which keeps the core logic mockable and loosely coupled.
 *
 * @notes
 * - Institution connectivity, persistence and API pushes are all simulated;
 *   both implementations in this package hold their state in memory for the
 *   lifetime of the process.
 */
package store

import (
	"context"
	"time"

	"github.com/trustmark/designation-service/internal/domain"
)

// Ledger is the contract for the account collection. Reads return deep
// copies; mutations are applied atomically and return the updated snapshot,
// so callers never observe or cause in-place mutation.
type Ledger interface {
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	InsertAccount(ctx context.Context, account *domain.Account) error

	// AppendBeneficiary adds a beneficiary to the end of the account's
	// collection, marks the account dirty and stamps LastUpdated.
	AppendBeneficiary(ctx context.Context, accountID string, b domain.Beneficiary) (*domain.Account, error)

	// ReplaceBeneficiary overwrites the mutable fields of the matching
	// beneficiary in place, preserving its position, ID and SSN, then marks
	// the account dirty and stamps LastUpdated.
	ReplaceBeneficiary(ctx context.Context, accountID string, b domain.Beneficiary) (*domain.Account, error)

	// RemoveBeneficiary deletes the matching beneficiary, marks the account
	// dirty and stamps LastUpdated. The removed beneficiary is returned for
	// audit detail.
	RemoveBeneficiary(ctx context.Context, accountID, beneficiaryID string) (domain.Beneficiary, *domain.Account, error)

	// MarkSubmitted clears the dirty flag and sets LastSubmitted.
	MarkSubmitted(ctx context.Context, accountID string, at time.Time) (*domain.Account, error)
}

// AuditTrail is the contract for the append-only audit log. Record never
// fails and never touches prior entries; Entries yields most-recent-first.
type AuditTrail interface {
	Record(ctx context.Context, action domain.AuditAction, accountID, details string, status domain.AuditStatus, institutionResponse string) domain.AuditEntry
	Entries(ctx context.Context) []domain.AuditEntry
}
