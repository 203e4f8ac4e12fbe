/**
 * @description
 * Institution-facing operations outside the submission workflow: pushing
 * the current designations to a connected institution, refreshing account
 * data, and generating the designation form PDF for the manual path.
 */
package app

import (
	"context"
	"fmt"

	"github.com/trustmark/designation-service/internal/domain"
)

// PushUpdate pushes the account's current beneficiary designations to its
// institution. Disconnected institutions are refused with
// ErrInstitutionOffline.
func (s *DesignationService) PushUpdate(ctx context.Context, accountID string) error {
	account, err := s.ledger.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}
	inst := s.directory.Lookup(account.Institution)

	response, err := s.institutions.PushUpdate(ctx, inst, account)
	if err != nil {
		return err
	}

	s.record(ctx, domain.ActionPushUpdate, accountID,
		fmt.Sprintf("Pushed beneficiary updates to %s", inst.Name),
		domain.StatusSuccess, response)
	return nil
}

// SyncAccount refreshes the account's data from its institution.
func (s *DesignationService) SyncAccount(ctx context.Context, accountID string) error {
	account, err := s.ledger.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}
	inst := s.directory.Lookup(account.Institution)

	response, err := s.institutions.SyncAccount(ctx, inst, account)
	if err != nil {
		return err
	}

	s.record(ctx, domain.ActionSyncAccount, accountID,
		fmt.Sprintf("Synchronized account data with %s", inst.Name),
		domain.StatusSuccess, response)
	return nil
}

// GeneratePDF renders the beneficiary designation form for the account and
// returns the document bytes. This is the manual path for institutions
// without API connectivity.
func (s *DesignationService) GeneratePDF(ctx context.Context, accountID string) ([]byte, error) {
	account, err := s.ledger.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	inst := s.directory.Lookup(account.Institution)

	doc, err := s.renderer.Render(account, inst)
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.ActionGeneratePDF, accountID,
		"Generated beneficiary designation form PDF",
		domain.StatusSuccess, domain.ResponseDocumentReady)
	return doc, nil
}
