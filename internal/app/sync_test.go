package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/trustmark/designation-service/internal/domain"
)

func TestSyncConnectedAccountsSkipsOfflineInstitutions(t *testing.T) {
	f := newFixture()
	connected := f.addAccount(t, "fidelity")
	f.addAccount(t, "vanguard")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jobs := NewSyncJobs(f.service, logger)
	jobs.SyncConnectedAccounts()

	if f.connector.synced != 1 {
		t.Errorf("connector syncs = %d, want 1", f.connector.synced)
	}

	var syncEntries []domain.AuditEntry
	for _, entry := range f.audit.Entries(context.Background()) {
		if entry.Action == domain.ActionSyncAccount {
			syncEntries = append(syncEntries, entry)
		}
	}
	if len(syncEntries) != 1 {
		t.Fatalf("sync audit entries = %d, want 1", len(syncEntries))
	}
	if syncEntries[0].AccountID != connected.ID {
		t.Errorf("synced %s, want %s", syncEntries[0].AccountID, connected.ID)
	}
}

func TestSeedDemoData(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if err := f.service.SeedDemoData(ctx); err != nil {
		t.Fatalf("SeedDemoData: %v", err)
	}

	accounts, _ := f.service.ListAccounts(ctx)
	if len(accounts) != 2 {
		t.Fatalf("seeded accounts = %d, want 2", len(accounts))
	}
	for _, account := range accounts {
		if account.HasUnsavedChanges {
			t.Errorf("seeded account %s marked dirty", account.AccountNumber)
		}
		summary, err := f.service.Allocation(ctx, account.ID)
		if err != nil {
			t.Fatalf("Allocation: %v", err)
		}
		if summary.PrimaryTotal != domain.FullAllocation {
			t.Errorf("seeded account %s primary total = %s", account.AccountNumber, summary.PrimaryTotal)
		}
	}
	if got := f.auditLen(t); got != 2 {
		t.Errorf("seed audit entries = %d, want 2", got)
	}
}
