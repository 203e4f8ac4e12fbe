/**
 * @description
 * The submission workflow: a per-account state machine moving an account
 * from dirty to submitted. An account with unsaved changes may begin a
 * submission only when its allocation is eligible; the confirmation step
 * re-checks eligibility before transmitting, so a caller bypassing the UI
 * gate is still refused.
 *
 * @notes
 * - Cancelling a pending submission mutates nothing and records no audit
 *   entry. The audit trail captures applied mutations and institution
 *   interactions; a cancel is neither.
 */
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/trustmark/designation-service/internal/allocation"
	"github.com/trustmark/designation-service/internal/domain"
)

// BeginSubmission moves a dirty, eligible account into the pending
// confirmation state. It fails with ErrNoUnsavedChanges on a clean account
// and ErrNotEligible when the allocation rules are not satisfied.
func (s *DesignationService) BeginSubmission(ctx context.Context, accountID string) error {
	account, err := s.ledger.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if !account.HasUnsavedChanges {
		return domain.ErrNoUnsavedChanges
	}
	if !allocation.CanSubmit(account) {
		return domain.ErrNotEligible
	}

	s.mu.Lock()
	s.pending[accountID] = struct{}{}
	s.mu.Unlock()
	return nil
}

// ConfirmSubmission completes a pending submission: eligibility is
// re-checked fail-closed, the designations are transmitted to the owning
// institution, the dirty flag is cleared and the submission is audited.
func (s *DesignationService) ConfirmSubmission(ctx context.Context, accountID string) (*domain.Account, error) {
	if !s.clearPending(accountID) {
		return nil, domain.ErrNoPendingSubmission
	}

	account, err := s.ledger.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !allocation.CanSubmit(account) {
		// The account changed since the submission began; refuse rather
		// than trust the earlier check.
		return nil, domain.ErrNotEligible
	}

	inst := s.directory.Lookup(account.Institution)
	response, err := s.institutions.SubmitDesignations(ctx, inst, account)
	if err != nil {
		return nil, err
	}

	account, err = s.ledger.MarkSubmitted(ctx, accountID, time.Now())
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.ActionSubmitChanges, accountID,
		fmt.Sprintf("Submitted beneficiary changes to %s", inst.Name),
		domain.StatusSuccess, response)
	return account, nil
}

// CancelSubmission abandons a pending submission. The account keeps its
// unsaved changes; nothing is recorded.
func (s *DesignationService) CancelSubmission(ctx context.Context, accountID string) error {
	if !s.clearPending(accountID) {
		return domain.ErrNoPendingSubmission
	}
	s.logger.Debug("submission cancelled", "account_id", accountID)
	return nil
}

// PendingConfirmation reports whether the account has a submission awaiting
// confirmation.
func (s *DesignationService) PendingConfirmation(accountID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[accountID]
	return ok
}

func (s *DesignationService) clearPending(accountID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[accountID]; !ok {
		return false
	}
	delete(s.pending, accountID)
	return true
}
