package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trustmark/designation-service/internal/domain"
)

// SeedDemoData loads the demo fixture: two fully designated accounts in a
// clean state, each with a sync entry in the audit trail. Intended for local
// development only.
func (s *DesignationService) SeedDemoData(ctx context.Context) error {
	accounts := []*domain.Account{
		{
			ID:            uuid.NewString(),
			AccountNumber: "IRA-001234",
			Type:          domain.AccountTraditionalIRA,
			Institution:   "fidelity",
			Balance:       125000,
			Beneficiaries: []domain.Beneficiary{
				{ID: uuid.NewString(), Name: "Sarah Johnson", Relationship: domain.RelationshipSpouse, Percentage: domain.PercentFromFloat(60), SSN: "***-**-1234", IsPrimary: true},
				{ID: uuid.NewString(), Name: "Michael Johnson", Relationship: domain.RelationshipChild, Percentage: domain.PercentFromFloat(40), SSN: "***-**-5678", IsPrimary: true},
			},
			LastUpdated: time.Now(),
		},
		{
			ID:            uuid.NewString(),
			AccountNumber: "BRK-567890",
			Type:          domain.AccountBrokerage,
			Institution:   "schwab",
			Balance:       85000,
			Beneficiaries: []domain.Beneficiary{
				{ID: uuid.NewString(), Name: "Sarah Johnson", Relationship: domain.RelationshipSpouse, Percentage: domain.PercentFromFloat(100), SSN: "***-**-1234", IsPrimary: true},
			},
			LastUpdated: time.Now(),
		},
	}

	for _, account := range accounts {
		if err := s.ledger.InsertAccount(ctx, account); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", account.AccountNumber, err)
		}
		inst := s.directory.Lookup(account.Institution)
		s.record(ctx, domain.ActionSyncAccount, account.ID,
			fmt.Sprintf("Synchronized account data with %s", inst.Name),
			domain.StatusSuccess, domain.ResponseDataSynced)
	}
	return nil
}
